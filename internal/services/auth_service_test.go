package services

import (
	"testing"

	"rentadmin/internal/config"
	"rentadmin/internal/testutil"
)

func newTestAuthService(t *testing.T) AuthServicer {
	t.Helper()

	svc, err := NewAuthService(&config.Config{
		AdminUsername: "admin",
		AdminPassword: "password123",
	})
	if err != nil {
		t.Fatalf("failed to create auth service: %v", err)
	}
	return svc
}

func TestVerifyCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := newTestAuthService(t)
		testutil.AssertNoError(t, svc.VerifyCredentials("admin", "password123"))
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc := newTestAuthService(t)
		err := svc.VerifyCredentials("admin", "hunter2")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong_username", func(t *testing.T) {
		svc := newTestAuthService(t)
		err := svc.VerifyCredentials("root", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("empty", func(t *testing.T) {
		svc := newTestAuthService(t)
		err := svc.VerifyCredentials("", "")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}
