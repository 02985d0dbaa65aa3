package authbridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskvault/taskvault/bridge/scaffolding/errs"
	"github.com/taskvault/taskvault/core/auth"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/logger"
)

type bridge struct {
	log  *logger.Logger
	auth *auth.Service
}

func newBridge(log *logger.Logger, authService *auth.Service) *bridge {
	return &bridge{
		log:  log,
		auth: authService,
	}
}

func (b *bridge) httpRegister(ctx context.Context, r *http.Request) web.Encoder {
	var input RegisterInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	userID, err := b.auth.Register(ctx, auth.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return errs.New(errs.InvalidArgument, err)
		case errors.Is(err, auth.ErrEmailTaken):
			return errs.Newf(errs.AlreadyExists, "Email already exists")
		default:
			return errs.New(errs.InternalOnlyLog, err)
		}
	}

	return web.NewJSONResponseWithStatus(RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	}, http.StatusCreated)
}

func (b *bridge) httpLogin(ctx context.Context, r *http.Request) web.Encoder {
	var input LoginInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	token, err := b.auth.Login(ctx, input.EmailOrUsername, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return errs.New(errs.InvalidArgument, err)
		case errors.Is(err, auth.ErrUserNotFound):
			return errs.Newf(errs.NotFound, "User not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return errs.Newf(errs.Unauthenticated, "Invalid credentials")
		default:
			return errs.New(errs.InternalOnlyLog, err)
		}
	}

	return web.NewJSONResponse(LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
