// Package auth registers accounts, checks credentials and issues and
// verifies signed bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskvault/taskvault/core/repositories/usersrepo"
	"github.com/taskvault/taskvault/sdk/environment"
	"github.com/taskvault/taskvault/sdk/logger"
)

// Set of errors returned by the service.
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
)

// Options is the exportable configuration struct.
type Options struct {
	JWTSecret string `env:"JWT_SECRET" required:"true"`
}

// UserStore is the part of the credential store the service needs.
type UserStore interface {
	Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error)
	QueryByIdentifier(ctx context.Context, identifier string) (usersrepo.User, error)
}

// RegisterInput holds the fields needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Service implements registration, login and token verification.
type Service struct {
	log    *logger.Logger
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenManager
}

// NewService constructs a Service signing tokens with secret.
func NewService(log *logger.Logger, users UserStore, secret string) (*Service, error) {
	tokens, err := NewTokenManager(secret)
	if err != nil {
		return nil, err
	}
	return &Service{
		log:    log,
		users:  users,
		hasher: NewPasswordHasher(),
		tokens: tokens,
	}, nil
}

// NewServiceFromEnv constructs a Service reading the signing secret from
// the environment. A missing secret is an error.
func NewServiceFromEnv(prefix string, log *logger.Logger, users UserStore) (*Service, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing auth config: %w", err)
	}
	return NewService(log, users, cfg.JWTSecret)
}

// Register hashes the password and stores a new account, returning its id.
func (s *Service) Register(ctx context.Context, input RegisterInput) (int64, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return 0, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, errPasswordTooLong) {
			return 0, fmt.Errorf("%w: password exceeds %d bytes", ErrValidation, maxPasswordBytes)
		}
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, usersrepo.CreateUser{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, usersrepo.ErrEmailTaken) {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("register: %w", err)
	}

	return user.ID, nil
}

// Login checks the password of the account matching identifier by email or
// username and returns a signed token.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return "", fmt.Errorf("%w: identifier and password are required", ErrValidation)
	}

	user, err := s.users.QueryByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, usersrepo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}

// VerifyToken validates a bearer token without touching the store.
func (s *Service) VerifyToken(token string) (Claims, error) {
	return s.tokens.Verify(token)
}
