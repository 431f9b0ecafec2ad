package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestUserService(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	t.Run("CreateUser stores a verifiable hash", func(t *testing.T) {
		user, err := svc.CreateUser("alice", "pw1")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == "" {
			t.Error("Expected user ID to be assigned")
		}
		if user.PasswordHash != "" {
			t.Error("Expected returned user to have no password hash")
		}

		stored, err := svc.FindByUsername("alice")
		if err != nil {
			t.Fatalf("FindByUsername failed: %v", err)
		}
		if stored == nil {
			t.Fatal("Expected to find created user")
		}
		if stored.PasswordHash == "pw1" {
			t.Fatal("Password stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")); err != nil {
			t.Errorf("Stored hash does not verify against the password: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw2")); err == nil {
			t.Error("Stored hash verifies against a wrong password")
		}
	})

	t.Run("Duplicate username fails and leaves the original intact", func(t *testing.T) {
		before, err := svc.FindByUsername("alice")
		if err != nil || before == nil {
			t.Fatalf("FindByUsername failed: %v", err)
		}

		_, err = svc.CreateUser("alice", "other-password")
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("Expected ErrUsernameTaken, got %v", err)
		}

		after, err := svc.FindByUsername("alice")
		if err != nil || after == nil {
			t.Fatalf("FindByUsername failed: %v", err)
		}
		if after.ID != before.ID || after.PasswordHash != before.PasswordHash {
			t.Error("Existing record was altered by the failed create")
		}
	})

	t.Run("Verify", func(t *testing.T) {
		if !svc.Verify("alice", "pw1") {
			t.Error("Expected correct credentials to verify")
		}
		if svc.Verify("alice", "wrong") {
			t.Error("Expected wrong password to fail verification")
		}
		if svc.Verify("nobody", "pw1") {
			t.Error("Expected unknown username to fail verification")
		}
	})

	t.Run("FindByUsername returns nil for unknown user", func(t *testing.T) {
		user, err := svc.FindByUsername("nobody")
		if err != nil {
			t.Fatalf("FindByUsername failed: %v", err)
		}
		if user != nil {
			t.Errorf("Expected nil, got %+v", user)
		}
	})
}
