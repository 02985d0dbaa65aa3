package tasksrepobridge

import (
	"fmt"
	"net/http"

	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/sdk/validation"
)

// QueryParams holds the raw filter query string values.
type QueryParams struct {
	Status   string
	Priority string
	DueDate  string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		DueDate:  q.Get("due_date"),
	}
}

// parseFilter builds a QueryFilter from the query string. Empty parameters
// are treated as absent.
func parseFilter(r *http.Request) (tasksrepo.QueryFilter, error) {
	params := parseQueryParams(r)

	var filter tasksrepo.QueryFilter

	if params.Status != "" {
		status, err := tasksrepo.ParseStatus(params.Status)
		if err != nil {
			return tasksrepo.QueryFilter{}, err
		}
		filter.Status = &status
	}

	if params.Priority != "" {
		priority, err := tasksrepo.ParsePriority(params.Priority)
		if err != nil {
			return tasksrepo.QueryFilter{}, err
		}
		filter.Priority = &priority
	}

	if params.DueDate != "" {
		due, err := validation.ParseFlexibleDate(params.DueDate)
		if err != nil {
			return tasksrepo.QueryFilter{}, fmt.Errorf("invalid due_date: %w", err)
		}
		filter.DueBefore = &due
	}

	return filter, nil
}
