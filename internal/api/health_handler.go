/*
Package api - Pipeline HTTP API Handlers

==============================================================================
FILE: internal/api/health_handler.go
==============================================================================

DESCRIPTION:
    Health check endpoints for monitoring and container orchestration. The
    pipeline keeps no database, so readiness reduces to "process is up and
    the in-memory run store is reachable".

ENDPOINTS:
    GET /health - General health status
    GET /ready  - Process readiness
    GET /live   - Process liveness

==============================================================================
*/
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the three standard liveness/readiness probes.
type HealthHandler struct {
	store *RunStore
}

// NewHealthHandler builds a HealthHandler backed by store.
func NewHealthHandler(store *RunStore) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"service":   "hhr-census",
	})
}

func (h *HealthHandler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"runs":   h.store.Count(),
	})
}

func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "live"})
}
