package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler serves liveness endpoints. The db field is nil when the file
// backend is configured.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates the health endpoints; db may be nil.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	hostname, _ := os.Hostname()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "coursespeak", "hostname": hostname})
}

// HealthDB reports database connectivity for the postgres backend.
func (h *HealthHandler) HealthDB(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "file"})
		return
	}
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "postgres unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "postgres": "connected"})
}
