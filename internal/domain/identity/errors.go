package identity

import "github.com/smartsolar/backend/internal/domain/shared"

// Sign-in failures, each with the human-readable reason shown inline on
// the login form. All share the AUTH_FAILED code: none of them leaves a
// session behind.
var (
	ErrUserNotFound       = shared.NewDomainError("AUTH_FAILED", "No user found with this email")
	ErrInvalidCredentials = shared.NewDomainError("AUTH_FAILED", "Invalid email or password")
	ErrWrongPassword      = shared.NewDomainError("AUTH_FAILED", "Incorrect password")
	ErrTooManyAttempts    = shared.NewDomainError("AUTH_FAILED", "Too many login attempts. Please try again later")
	ErrNotAdmin           = shared.NewDomainError("AUTH_FAILED", "Access denied. Only administrators can access this panel.")
)
