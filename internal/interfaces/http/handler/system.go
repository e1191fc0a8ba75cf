package handler

import (
	"net/http"
	"time"

	"github.com/bizdesk/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	db        *persistence.Database
	startTime time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// Health handles GET /health. A failing database ping reports degraded
// with 503 so load balancers stop routing here.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK
	dbStatus := "ok"

	if err := h.db.Ping(); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		dbStatus = "unreachable"
	}

	payload := gin.H{
		"status":    status,
		"database":  dbStatus,
		"uptime":    time.Since(h.startTime).String(),
		"timestamp": time.Now().UTC(),
	}
	if stats, err := h.db.Stats(); err == nil {
		payload["db_connections"] = gin.H{
			"open":   stats.OpenConnections,
			"in_use": stats.InUse,
			"idle":   stats.Idle,
		}
	}

	c.JSON(httpStatus, payload)
}
