package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartsolar/backend/internal/infrastructure/persistence"
)

// SystemHandler serves health and readiness probes
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	started time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db, started: time.Now()}
}

// Health reports liveness
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready reports readiness, checking the database connection
// GET /ready
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  "database unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
