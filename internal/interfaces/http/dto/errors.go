package dto

import "net/http"

// Error code constants. These mirror the domain error codes in
// internal/domain/shared so handlers can translate a DomainError to a
// status code without switching on sentinel values.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks the admin role
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeAuthFailed is used for rejected sign-ins
	ErrCodeAuthFailed = "AUTH_FAILED"
	// ErrCodeGatewayUnavailable is used when the backing store cannot be reached
	ErrCodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	// ErrCodeMutationFailed is used when the backing store rejects a write
	ErrCodeMutationFailed = "MUTATION_FAILED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeAuthFailed:         http.StatusUnauthorized,
	ErrCodeGatewayUnavailable: http.StatusServiceUnavailable,
	ErrCodeMutationFailed:     http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
