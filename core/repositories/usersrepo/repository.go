// Package usersrepo is the credential store: persisted accounts with a
// unique email.
package usersrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskvault/taskvault/sdk/logger"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Storer defines the data storage interface for User.
type Storer interface {
	Create(ctx context.Context, input CreateUser) (User, error)
	QueryByIdentifier(ctx context.Context, identifier string) (User, error)
}

// Repository provides access to user storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new User repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create persists a new account. A second account with the same email fails
// with ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, input CreateUser) (User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	user, err := r.storer.Create(ctx, input)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	r.log.InfoContext(ctx, "user created", "user_id", user.ID)
	return user, nil
}

// QueryByIdentifier finds the account whose email or username equals
// identifier. An email match takes precedence over a username match and the
// oldest account wins among accounts sharing a username.
func (r *Repository) QueryByIdentifier(ctx context.Context, identifier string) (User, error) {
	user, err := r.storer.QueryByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}
