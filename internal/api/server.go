package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"awinfeed/internal/api/handlers"
	"awinfeed/internal/api/middleware"
	"awinfeed/internal/config"
	"awinfeed/internal/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, generator handlers.Generator) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	feedHandler := handlers.NewFeedHandler(generator, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"store":  cfg.ShopifyStore,
		})
	})

	// Routes
	v1 := router.Group("/api/v1")
	{
		feeds := v1.Group("/feeds")
		{
			feeds.GET("/awin.csv", feedHandler.Full)
			feeds.GET("/awin-minimal.csv", feedHandler.Minimal)
			feeds.GET("/awin.json", feedHandler.JSON)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting server on " + s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop shuts the server down. Safe to call before or concurrently with Start;
// a later Start returns http.ErrServerClosed.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}
