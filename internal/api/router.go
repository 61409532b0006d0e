/*
Package api - Census Reconciliation HTTP API Handlers

==============================================================================
FILE: internal/api/router.go
==============================================================================

DESCRIPTION:
    Central routing configuration for the bed-census reconciliation API.
    Wires the in-memory RunStore to the ingestion and reporting handlers
    under one route group.

ROUTE STRUCTURE:
    /api/v1
    ├── /health, /ready, /live
    ├── POST /workbooks
    └── GET  /reports/:runId/{period,monthly,quarterly,yearly,range}

==============================================================================
*/
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dopazo/hhr-census/internal/config"
)

// Router sets up all API routes.
type Router struct {
	store     *RunStore
	appConfig *config.AppConfig
}

// NewRouter creates a new router backed by store.
func NewRouter(store *RunStore, appConfig *config.AppConfig) *Router {
	return &Router{store: store, appConfig: appConfig}
}

// Setup configures all routes under routerGroup.
func (r *Router) Setup(routerGroup *gin.RouterGroup) {
	healthHandler := NewHealthHandler(r.store)
	routerGroup.GET("/health", healthHandler.HealthCheck)
	routerGroup.GET("/ready", healthHandler.ReadyCheck)
	routerGroup.GET("/live", healthHandler.LivenessCheck)

	workbookHandler := NewWorkbookHandler(r.store)
	workbookHandler.RegisterRoutes(routerGroup)

	reportHandler := NewReportHandler(r.store, r.appConfig.BedCapacity, r.appConfig.MaxMonthlyReports)
	reportHandler.RegisterRoutes(routerGroup)
}
