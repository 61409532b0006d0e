/*
Package main - Census Reconciliation API Server Entry Point

==============================================================================
FILE: cmd/server/main.go
==============================================================================

DESCRIPTION:
    Entry point for the bed-census reconciliation HTTP API. Loads
    configuration, wires the in-memory RunStore into the router, and starts
    the server with graceful shutdown on SIGINT/SIGTERM.

==============================================================================
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dopazo/hhr-census/internal/api"
	"github.com/dopazo/hhr-census/internal/config"
	"github.com/dopazo/hhr-census/internal/logger"
	"github.com/dopazo/hhr-census/internal/middleware"
)

func main() {
	cfg, err := config.LoadAppConfig("./configs")
	if err != nil {
		panic("failed to load application configuration: " + err.Error())
	}

	appLogger := logger.Setup(cfg.Env)

	store := api.NewRunStore()
	router := setupRouter(cfg, appLogger, store)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Infof("starting server on port %d in %s mode", cfg.ServerPort, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatalf("server forced to shutdown: %v", err)
	}

	appLogger.Info("server exited properly")
}

func setupRouter(cfg *config.AppConfig, appLogger *logrus.Logger, store *api.RunStore) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg.CORSAllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(logger.GinLogger(appLogger))
	router.Use(gin.Recovery())
	router.Use(middleware.NewSecurityMiddleware(cfg).Headers())
	router.Use(middleware.APIRateLimiter(cfg).Limit())

	apiRouter := api.NewRouter(store, cfg)
	apiRouter.Setup(router.Group("/api/v1"))

	return router
}

func allowedOrigins(raw string) []string {
	if raw == "" || raw == "*" {
		return []string{"*"}
	}
	origins := []string{}
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			if i > start {
				origins = append(origins, raw[start:i])
			}
			start = i + 1
		}
	}
	return origins
}
