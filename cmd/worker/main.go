package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"awinfeed/internal/config"
	"awinfeed/internal/events"
	"awinfeed/internal/logger"
	"awinfeed/internal/services/awin"
	"awinfeed/internal/services/shopify"
	"awinfeed/internal/worker"
	"awinfeed/internal/worker/processors"
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
	if len(cfg.KafkaBrokerList()) == 0 {
		logger.Fatal("KAFKA_BROKERS is required to run the worker")
	}

	categories, err := awin.LoadCategoryMap(cfg.CategoryMapPath)
	if err != nil {
		logger.Fatal("Failed to load category map: %v", err)
	}

	publisher := events.NewPublisher(cfg.KafkaBrokerList(), logger)
	defer publisher.Close()

	client := shopify.NewClient(cfg.ShopifyStore, cfg.ShopifyAPIVersion, cfg.ShopifyAccessToken, logger)
	pipeline := processors.NewPipeline(cfg, logger, client, categories, publisher)

	// Initialize worker
	w := worker.New(cfg, logger, pipeline)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Start worker
	logger.Info("Starting worker...")
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	cancel()
	<-done
	w.Stop()
}
