package dto

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMessage creates a success response that carries
// a user-facing message alongside the data.
func NewSuccessResponseWithMessage(data interface{}, message string) Response {
	return Response{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response tagged with
// the request id for correlation with server logs.
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// LoginRequest is the login form payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

// CreateProductRequest is the add-product form payload. Field names
// follow the stored document schema.
type CreateProductRequest struct {
	Title         string   `json:"title" binding:"required"`
	Category      string   `json:"category"`
	Price         string   `json:"price" binding:"required"`
	About         string   `json:"about"`
	Description   string   `json:"description"`
	Specification []string `json:"specification"`
	Guide         []string `json:"guide"`
	Image         string   `json:"image"`
}

// UploadImageResponse carries the stored image location
type UploadImageResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
