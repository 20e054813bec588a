package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. The codes mirror the dashboard's error taxonomy:
// gateway reads that fail render an inline collection error, rejected
// mutations alert the user, auth failures show on the login form, and
// a missing cross-reference target is a sentinel, never an error.
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrGatewayUnavailable = NewDomainError("GATEWAY_UNAVAILABLE", "Backend store is unavailable")
	ErrMutationFailed     = NewDomainError("MUTATION_FAILED", "Write was rejected by the backend store")
	ErrAuthFailed         = NewDomainError("AUTH_FAILED", "Authentication failed")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden          = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
)
