package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	sessionHTTP "github.com/allisson/parkledger/internal/session/http"
)

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host                    string
	Port                    int
	GinMode                 string
	CORSEnabled             bool
	CORSAllowOrigins        string
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
}

// Server represents the operator API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the HTTP server with its routes and middleware stack.
// The metricsMiddleware parameter is optional; pass nil when metrics are disabled.
func NewServer(
	appCtx context.Context,
	cfg ServerConfig,
	sessionHandler *sessionHTTP.SessionHandler,
	metricsMiddleware gin.HandlerFunc,
	logger *slog.Logger,
) *Server {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsMiddleware != nil {
		router.Use(metricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	// Health and readiness endpoints
	router.GET("/health", HealthHandler())
	router.GET("/ready", ReadinessHandler(appCtx))

	// Session lifecycle and status lookups
	v1 := router.Group("/v1")
	{
		v1.POST("/sessions", sessionHandler.ParkHandler)
		v1.GET("/sessions", sessionHandler.ListHandler)
		v1.DELETE("/sessions/:plate", sessionHandler.LeaveHandler)
		v1.GET("/plates/:plate/status", sessionHandler.StatusHandler)
	}

	return &Server{
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
