// Package mid provides app level middleware support.
package mid

import (
	"context"
	"errors"

	"github.com/taskvault/taskvault/core/auth"
	"github.com/taskvault/taskvault/infrastructure/web"
)

type ctxKey int

const (
	claimKey ctxKey = iota + 1
	userIDKey
)

// ErrNoUser is returned when no authenticated user is stored in the context.
var ErrNoUser = errors.New("user id not found in context")

func setClaims(ctx context.Context, claims auth.Claims) context.Context {
	ctx = context.WithValue(ctx, claimKey, claims)
	return context.WithValue(ctx, userIDKey, claims.UserID)
}

// GetClaims returns the claims from the context.
func GetClaims(ctx context.Context) (auth.Claims, error) {
	v, ok := ctx.Value(claimKey).(auth.Claims)
	if !ok {
		return auth.Claims{}, ErrNoUser
	}
	return v, nil
}

// GetUserID returns the user id from the context.
func GetUserID(ctx context.Context) (int64, error) {
	v, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, ErrNoUser
	}

	return v, nil
}

// isError tests if the Encoder has an error inside of it.
func isError(e web.Encoder) error {
	err, isError := e.(error)
	if isError {
		return err
	}
	return nil
}
