// Package taskspgxstore implements tasksrepo.Storer on postgres.
package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/postgresdb"
	"github.com/taskvault/taskvault/sdk/logger"
)

const (
	taskColumns = "id, user_id, title, description, status, priority, deadline, created_at"
	pkField     = "id"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new task owned by ownerID.
func (s *Store) Create(ctx context.Context, ownerID int64, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, status, priority, deadline)
		VALUES (@user_id, @title, @description, @status, @priority, @deadline)
		RETURNING ` + taskColumns

	args := pgx.NamedArgs{
		"user_id":     ownerID,
		"title":       input.Title,
		"description": input.Description,
		"status":      statusArg(input.Status),
		"priority":    string(input.Priority),
		"deadline":    input.Deadline,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Update sets only the supplied columns on the task matching both taskID and
// ownerID.
func (s *Store) Update(ctx context.Context, ownerID, taskID int64, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	fields, args := updateFields(input)
	if len(fields) == 0 {
		return tasksrepo.Task{}, fmt.Errorf("%w: no fields to update", tasksrepo.ErrValidation)
	}

	args["id"] = taskID
	args["user_id"] = ownerID

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = @id AND user_id = @user_id
		RETURNING %s`, strings.Join(fields, ", "), taskColumns)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Delete removes the task matching both taskID and ownerID.
func (s *Store) Delete(ctx context.Context, ownerID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = @id AND user_id = @user_id`

	args := pgx.NamedArgs{
		"id":      taskID,
		"user_id": ownerID,
	}

	tag, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return tasksrepo.ErrNotFound
	}

	return nil
}

// Query returns the owner's tasks matching filter, newest first.
func (s *Store) Query(ctx context.Context, ownerID int64, filter tasksrepo.QueryFilter) ([]tasksrepo.Task, error) {
	args := pgx.NamedArgs{}
	where := applyFilter(ownerID, filter, args)

	buf := bytes.NewBufferString("SELECT " + taskColumns + " FROM tasks")
	where.Apply(buf)

	if err := postgresdb.AddOrderByClause(buf, postgresdb.OrderBy{Field: "created_at", Direction: postgresdb.DESC}, pkField); err != nil {
		return nil, err
	}

	return s.collect(ctx, buf.String(), args)
}

// Search returns the owner's tasks whose title or description contains
// keyword, ignoring case. Matching uses strpos so wildcard characters in the
// keyword are taken literally.
func (s *Store) Search(ctx context.Context, ownerID int64, keyword string) ([]tasksrepo.Task, error) {
	args := pgx.NamedArgs{
		"user_id": ownerID,
		"keyword": keyword,
	}

	var where postgresdb.Where
	where.Add("user_id = @user_id")
	where.Add("(strpos(lower(title), lower(@keyword)) > 0 OR strpos(lower(coalesce(description, '')), lower(@keyword)) > 0)")

	buf := bytes.NewBufferString("SELECT " + taskColumns + " FROM tasks")
	where.Apply(buf)

	if err := postgresdb.AddOrderByClause(buf, postgresdb.OrderBy{Field: "deadline", Direction: postgresdb.DESC}, pkField); err != nil {
		return nil, err
	}

	return s.collect(ctx, buf.String(), args)
}

func (s *Store) collect(ctx context.Context, query string, args pgx.NamedArgs) ([]tasksrepo.Task, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	if tasks == nil {
		tasks = []tasksrepo.Task{}
	}

	return tasks, nil
}
