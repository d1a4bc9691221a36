// Package auth secures the admin surface: credential validation against
// environment-configured admin credentials, JWT issuing, and the bearer-token
// middleware protecting admin routes.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidCredentials is returned for any failed login attempt. The reason
// is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// minPasswordLength is the floor enforced on the configured admin password.
const minPasswordLength = 12

// Credentials is a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// ValidateAdminConfigured checks the admin credential configuration at
// startup so the server refuses to boot with an empty or weak admin password
// instead of failing every login later.
func ValidateAdminConfigured() error {
	if os.Getenv("ADMIN_EMAIL") == "" {
		return errors.New("ADMIN_EMAIL not set")
	}
	if len(os.Getenv("ADMIN_PASSWORD")) < minPasswordLength {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", minPasswordLength)
	}
	return nil
}

// ValidateCredentials checks a login attempt against the ADMIN_EMAIL and
// ADMIN_PASSWORD environment variables using constant-time comparison.
func ValidateCredentials(creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrInvalidCredentials
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || len(adminPassword) < minPasswordLength {
		// Misconfigured credentials must never let anyone in.
		return fmt.Errorf("admin credentials not configured: %w", ErrInvalidCredentials)
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(adminEmail)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(adminPassword)) == 1
	if !emailMatch || !passMatch {
		return ErrInvalidCredentials
	}
	return nil
}
