package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartsolar/backend/internal/application/dashboard"
	"github.com/smartsolar/backend/internal/interfaces/http/dto"
	"github.com/smartsolar/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	BaseHandler
	gate *dashboard.SessionGate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gate *dashboard.SessionGate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// Login signs an administrator in with email and password
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and password are required")
		return
	}

	session, err := h.gate.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.LoginResponse{
		Token:     session.Token,
		UserID:    session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout terminates the current admin session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if err := h.gate.Logout(c.Request.Context(), token); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, nil, "Logged out")
}

// Me returns the authorized session behind the bearer token
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		h.Unauthorized(c, "No active session")
		return
	}
	h.Success(c, dto.LoginResponse{
		Token:     session.Token,
		UserID:    session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
