package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/taskvault/taskvault/core/repositories/usersrepo"
	"github.com/taskvault/taskvault/sdk/logger"
)

type stubUsers struct {
	mu     sync.Mutex
	nextID int64
	users  []usersrepo.User
}

func (s *stubUsers) Create(_ context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == input.Email {
			return usersrepo.User{}, usersrepo.ErrEmailTaken
		}
	}
	s.nextID++
	user := usersrepo.User{ID: s.nextID, Username: input.Username, Email: input.Email, Password: input.PasswordHash}
	s.users = append(s.users, user)
	return user, nil
}

func (s *stubUsers) QueryByIdentifier(_ context.Context, identifier string) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == identifier {
			return u, nil
		}
	}
	for _, u := range s.users {
		if u.Username == identifier {
			return u, nil
		}
	}
	return usersrepo.User{}, usersrepo.ErrNotFound
}

func newTestService(t *testing.T) (*Service, *stubUsers) {
	t.Helper()
	users := &stubUsers{}
	svc, err := NewService(logger.NewDiscard(), users, "test-secret")
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc, users
}

func TestService_Register(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	second, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: "b@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if second <= first {
		t.Errorf("ids not increasing: %d then %d", first, second)
	}

	if users.users[0].Password == "pw123456" {
		t.Error("stored password equals plaintext")
	}
}

func TestService_Register_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{name: "duplicate email", input: RegisterInput{Username: "other", Email: "a@x.com", Password: "different"}, want: ErrEmailTaken},
		{name: "missing username", input: RegisterInput{Email: "c@x.com", Password: "pw"}, want: ErrValidation},
		{name: "missing email", input: RegisterInput{Username: "carol", Password: "pw"}, want: ErrValidation},
		{name: "missing password", input: RegisterInput{Username: "carol", Email: "c@x.com"}, want: ErrValidation},
		{name: "password too long", input: RegisterInput{Username: "carol", Email: "c@x.com", Password: strings.Repeat("p", 73)}, want: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Register() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for _, identifier := range []string{"a@x.com", "alice"} {
		token, err := svc.Login(ctx, identifier, "pw123456")
		if err != nil {
			t.Fatalf("Login(%q) error = %v", identifier, err)
		}
		claims, err := svc.VerifyToken(token)
		if err != nil {
			t.Fatalf("VerifyToken() error = %v", err)
		}
		if claims.UserID != id || claims.Username != "alice" {
			t.Errorf("claims = %+v, want id %d alice", claims, id)
		}
	}

	tests := []struct {
		name       string
		identifier string
		password   string
		want       error
	}{
		{name: "wrong password", identifier: "a@x.com", password: "nope", want: ErrInvalidCredentials},
		{name: "unknown identifier", identifier: "ghost", password: "pw123456", want: ErrUserNotFound},
		{name: "missing identifier", identifier: "", password: "pw123456", want: ErrValidation},
		{name: "missing password", identifier: "alice", password: "", want: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.identifier, tt.password)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Login() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewServiceFromEnv_RequiresSecret(t *testing.T) {
	t.Setenv("AUTHTEST_JWT_SECRET", "")
	if _, err := NewServiceFromEnv("AUTHTEST", logger.NewDiscard(), &stubUsers{}); err == nil {
		t.Fatal("expected error when secret is missing")
	}

	t.Setenv("AUTHTEST_JWT_SECRET", "s3cret")
	if _, err := NewServiceFromEnv("AUTHTEST", logger.NewDiscard(), &stubUsers{}); err != nil {
		t.Fatalf("NewServiceFromEnv() error = %v", err)
	}
}
