/*
Package logger - Structured logging configuration and HTTP request logging

==============================================================================
FILE: internal/logger/logger.go
==============================================================================

DESCRIPTION:
    Configures structured logging with logrus and provides Gin middleware for
    HTTP request/response logging: latency, status, client IP, and errors.

==============================================================================
*/
package logger

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Setup initializes the logger for a given environment.
func Setup(env string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// GinLogger returns a gin.HandlerFunc for logging HTTP requests.
func GinLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := log.WithFields(logrus.Fields{
			"latency":    time.Since(start),
			"method":     c.Request.Method,
			"status":     c.Writer.Status(),
			"ip":         c.ClientIP(),
			"uri":        path,
			"user_agent": c.Request.UserAgent(),
			"errors":     c.Errors.ByType(gin.ErrorTypePrivate).String(),
		})

		switch {
		case c.Writer.Status() >= 500:
			entry.Error()
		case c.Writer.Status() >= 400:
			entry.Warn()
		default:
			entry.Info()
		}
	}
}
