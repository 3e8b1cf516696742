package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"awinfeed/internal/api"
	"awinfeed/internal/config"
	"awinfeed/internal/logger"
	"awinfeed/internal/services/awin"
	"awinfeed/internal/services/shopify"
	"awinfeed/internal/worker/processors"

	"github.com/cockroachdb/errors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogJSON)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}

	categories, err := awin.LoadCategoryMap(cfg.CategoryMapPath)
	if err != nil {
		logger.Fatal("Failed to load category map: %v", err)
	}

	client := shopify.NewClient(cfg.ShopifyStore, cfg.ShopifyAPIVersion, cfg.ShopifyAccessToken, logger)
	pipeline := processors.NewPipeline(cfg, logger, client, categories, nil)

	// Initialize API server
	server := api.New(cfg, logger, pipeline)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}
