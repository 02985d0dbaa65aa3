package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_GenerateAndVerify(t *testing.T) {
	manager, err := NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := manager.Generate(42, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("claims.Username = %q, want alice", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != TokenTTL {
		t.Errorf("token lifetime = %v, want %v", got, TokenTTL)
	}
}

func TestTokenManager_EmptySecret(t *testing.T) {
	if _, err := NewTokenManager(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestTokenManager_Rejects(t *testing.T) {
	manager, err := NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	other, err := NewTokenManager("other-secret")
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	expired, err := NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	foreign, err := other.Generate(1, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	stale, err := expired.Generate(1, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: foreign},
		{name: "expired", token: stale},
		{name: "alg none", token: unsigned},
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Verify(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
