// Package http provides the HTTP server implementation and shared middleware.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// CustomLoggerMiddleware returns a Gin middleware that logs requests through slog.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", requestid.Get(c)),
		)
	}
}

// RecoveryMiddleware recovers from panics and returns a JSON 500 response.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic recovered",
			slog.Any("error", err),
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
	})
}

// HealthHandler returns a simple health check handler.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// ReadinessHandler returns a readiness check handler that reports not ready
// once the application context is cancelled.
func ReadinessHandler(appCtx context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		select {
		case <-appCtx.Done():
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		default:
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
