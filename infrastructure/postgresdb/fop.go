package postgresdb

import (
	"bytes"
	"fmt"
	"strings"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// OrderBy names a column and direction. The primary key is appended as a
// tiebreaker so results are stable.
type OrderBy struct {
	Field     string
	Direction string
}

// Where accumulates AND-ed predicates for a query.
type Where struct {
	conds []string
}

// Add appends a predicate. Predicates must reference named args only; values
// are never interpolated.
func (w *Where) Add(cond string) {
	w.conds = append(w.conds, cond)
}

// Len reports the number of predicates.
func (w *Where) Len() int {
	return len(w.conds)
}

// Apply writes the WHERE clause, or nothing when empty.
func (w *Where) Apply(buf *bytes.Buffer) {
	if len(w.conds) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(w.conds, " AND "))
}

// AddOrderByClause adds ORDER BY clause to the query buffer
func AddOrderByClause(buf *bytes.Buffer, orderBy OrderBy, pkField string) error {
	quotedOrderField, err := QuoteIdentifier(orderBy.Field)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	quotedPKField, err := QuoteIdentifier(pkField)
	if err != nil {
		return fmt.Errorf("invalid pk field name: %w", err)
	}

	direction := strings.ToUpper(orderBy.Direction)
	if direction != ASC && direction != DESC {
		return fmt.Errorf("invalid order direction: %q", orderBy.Direction)
	}

	fmt.Fprintf(buf, " ORDER BY %s %s", quotedOrderField, direction)
	if orderBy.Field != pkField {
		fmt.Fprintf(buf, ", %s %s", quotedPKField, direction)
	}

	return nil
}
