package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("hash %q does not use cost 10", hash)
	}

	if !hasher.Verify("pw123456", hash) {
		t.Error("Verify() rejected correct password")
	}
	if hasher.Verify("wrong", hash) {
		t.Error("Verify() accepted wrong password")
	}
}

func TestPasswordHasher_Salted(t *testing.T) {
	hasher := NewPasswordHasher()

	a, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestPasswordHasher_TooLong(t *testing.T) {
	_, err := NewPasswordHasher().Hash(strings.Repeat("a", maxPasswordBytes+1))
	if !errors.Is(err, errPasswordTooLong) {
		t.Fatalf("expected errPasswordTooLong, got %v", err)
	}
}
