package taskspgxstore

import (
	"github.com/jackc/pgx/v5"

	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/postgresdb"
)

// applyFilter builds the predicates for filter and records their values in
// args. The owner predicate is always present.
func applyFilter(ownerID int64, filter tasksrepo.QueryFilter, args pgx.NamedArgs) postgresdb.Where {
	var where postgresdb.Where

	where.Add("user_id = @user_id")
	args["user_id"] = ownerID

	if filter.Status != nil {
		where.Add("status = @status")
		args["status"] = string(*filter.Status)
	}

	if filter.Priority != nil {
		where.Add("priority = @priority")
		args["priority"] = string(*filter.Priority)
	}

	if filter.DueBefore != nil {
		where.Add("deadline <= @due_before")
		args["due_before"] = *filter.DueBefore
	}

	return where
}

// updateFields returns one SET assignment per supplied field.
func updateFields(input tasksrepo.UpdateTask) ([]string, pgx.NamedArgs) {
	var fields []string
	args := pgx.NamedArgs{}

	if input.Title != nil {
		fields = append(fields, "title = @title")
		args["title"] = *input.Title
	}
	if input.Description != nil {
		fields = append(fields, "description = @description")
		args["description"] = *input.Description
	}
	if input.Status != nil {
		fields = append(fields, "status = @status")
		args["status"] = string(*input.Status)
	}
	if input.Priority != nil {
		fields = append(fields, "priority = @priority")
		args["priority"] = string(*input.Priority)
	}
	if input.Deadline != nil {
		fields = append(fields, "deadline = @deadline")
		args["deadline"] = *input.Deadline
	}

	return fields, args
}

func statusArg(s *tasksrepo.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
