package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rentadmin/internal/config"
	apperrors "rentadmin/internal/errors"
)

// authService checks operator credentials against the configured pair.
// The configured password is hashed once at construction.
type authService struct {
	username     string
	passwordHash []byte
}

// NewAuthService creates a new AuthServicer from the application config.
func NewAuthService(cfg *config.Config) (AuthServicer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{username: cfg.AdminUsername, passwordHash: hash}, nil
}

// VerifyCredentials checks a username/password pair. Both checks always
// run so the response does not reveal which part was wrong.
func (s *authService) VerifyCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil

	if !userOK || !passOK {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
