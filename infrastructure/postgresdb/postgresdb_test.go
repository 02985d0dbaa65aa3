package postgresdb

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "created_at", want: `"created_at"`},
		{in: "public.tasks", want: `"public"."tasks"`},
		{in: "a.b.c", wantErr: true},
		{in: "id; DROP TABLE users", wantErr: true},
		{in: `na"me`, wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := QuoteIdentifier(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("QuoteIdentifier(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("QuoteIdentifier(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestWhere(t *testing.T) {
	var where Where

	var buf bytes.Buffer
	where.Apply(&buf)
	if buf.Len() != 0 {
		t.Fatalf("empty Where wrote %q", buf.String())
	}

	where.Add("user_id = @user_id")
	where.Add("status = @status")
	where.Apply(&buf)

	if got, want := buf.String(), " WHERE user_id = @user_id AND status = @status"; got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
	if where.Len() != 2 {
		t.Fatalf("Len = %d", where.Len())
	}
}

func TestAddOrderByClause(t *testing.T) {
	tests := []struct {
		name    string
		orderBy OrderBy
		want    string
		wantErr bool
	}{
		{name: "with tiebreak", orderBy: OrderBy{Field: "created_at", Direction: DESC}, want: ` ORDER BY "created_at" DESC, "id" DESC`},
		{name: "lower case direction", orderBy: OrderBy{Field: "deadline", Direction: "asc"}, want: ` ORDER BY "deadline" ASC, "id" ASC`},
		{name: "pk only", orderBy: OrderBy{Field: "id", Direction: ASC}, want: ` ORDER BY "id" ASC`},
		{name: "bad direction", orderBy: OrderBy{Field: "id", Direction: "SIDEWAYS"}, wantErr: true},
		{name: "bad field", orderBy: OrderBy{Field: "1=1", Direction: ASC}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := AddOrderByClause(&buf, tt.orderBy, "id")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", buf.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("AddOrderByClause: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestHandlePgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolation}, want: ErrDBDuplicatedEntry},
		{name: "foreign key", err: &pgconn.PgError{Code: foreignKeyViolation}, want: ErrDBForeignKey},
		{name: "check", err: &pgconn.PgError{Code: checkViolation}, want: ErrDBCheckViolation},
		{name: "undefined table", err: &pgconn.PgError{Code: undefinedTable}, want: ErrUndefinedTable},
		{name: "no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: ErrDBNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandlePgError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Fatalf("HandlePgError = %v, want %v", got, tt.want)
			}
		})
	}

	if HandlePgError(nil) != nil {
		t.Fatal("HandlePgError(nil) should be nil")
	}

	var pgErr *pgconn.PgError
	if !errors.As(HandlePgError(&pgconn.PgError{Code: uniqueViolation}), &pgErr) {
		t.Fatal("original PgError dropped from chain")
	}
}

func TestPrettyPrintSQL(t *testing.T) {
	in := `
		SELECT id, title
		FROM   tasks
		WHERE  id IN ( @a, @b )`

	if got, want := prettyPrintSQL(in), "SELECT id, title FROM tasks WHERE id IN(@a, @b)"; got != want {
		t.Fatalf("prettyPrintSQL = %q, want %q", got, want)
	}
}

func TestMigrationFiles_Sorted(t *testing.T) {
	fsys := fstest.MapFS{
		"m/010_later.sql": {Data: []byte("SELECT 1")},
		"m/002_tasks.sql": {Data: []byte("SELECT 1")},
		"m/001_users.sql": {Data: []byte("SELECT 1")},
		"m/README.md":     {Data: []byte("notes")},
		"m/sub/003_x.sql": {Data: []byte("SELECT 1")},
	}

	files, err := migrationFiles(fsys, "m")
	if err != nil {
		t.Fatalf("migrationFiles: %v", err)
	}

	want := []string{"001_users.sql", "002_tasks.sql", "010_later.sql"}
	if fmt.Sprint(files) != fmt.Sprint(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
}
