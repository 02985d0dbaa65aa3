package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/taskvault/taskvault/bridge/scaffolding/errs"
	"github.com/taskvault/taskvault/bridge/scaffolding/mid"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/logger"
)

type bridge struct {
	log             *logger.Logger
	tasksRepository *tasksrepo.Repository
}

func newBridge(log *logger.Logger, tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		log:             log,
		tasksRepository: tasksRepository,
	}
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
	}

	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Create(ctx, ownerID, create)
	if err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
	}

	tasks, err := b.tasksRepository.List(ctx, ownerID)
	if err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
	}

	taskID, appErr := parseTaskID(r)
	if appErr != nil {
		return appErr
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	update, err := MarshalUpdateToRepository(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Update(ctx, ownerID, taskID, update)
	if err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
	}

	taskID, appErr := parseTaskID(r)
	if appErr != nil {
		return appErr
	}

	if err := b.tasksRepository.Delete(ctx, ownerID, taskID); err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponse(MessageResponse{Message: "Task deleted successfully"})
}

func (b *bridge) httpFilter(ctx context.Context, r *http.Request) web.Encoder {
	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
	}

	filter, err := parseFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks, err := b.tasksRepository.Filter(ctx, ownerID, filter)
	if err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpSearch(ctx context.Context, r *http.Request) web.Encoder {
	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Access denied. No token provided.")
	}

	tasks, err := b.tasksRepository.Search(ctx, ownerID, web.QueryParam(r, "keyword"))
	if err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func parseTaskID(r *http.Request) (int64, *errs.Error) {
	id, err := strconv.ParseInt(web.Param(r, "task_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Newf(errs.InvalidArgument, "invalid task id")
	}
	return id, nil
}

// toAppError maps repository errors onto the error taxonomy. Anything
// unexpected is logged in full and reported to the client as a bare 500.
func toAppError(err error) *errs.Error {
	switch {
	case errors.Is(err, tasksrepo.ErrValidation):
		return errs.New(errs.InvalidArgument, err)
	case errors.Is(err, tasksrepo.ErrNotFound):
		return errs.Newf(errs.NotFound, "Task not found")
	default:
		return errs.New(errs.InternalOnlyLog, err)
	}
}
