package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"awinfeed/internal/config"
	"awinfeed/internal/events"
	"awinfeed/internal/logger"
	"awinfeed/internal/services/awin"
	"awinfeed/internal/services/shopify"
	"awinfeed/internal/worker/processors"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	rawOutput     string
	feedOutput    string
	minimalOutput string
	categoryMap   string
	noPublish     bool
)

var rootCmd = &cobra.Command{
	Use:   "awin-feed",
	Short: "Generate the AWIN product feed from the Shopify catalog",
	Long: `Fetches one page of active products from the Shopify Admin API and writes:

  - a raw dump of the catalog
  - the full AWIN feed (every column)
  - the minimal AWIN feed (required columns only)

Credentials come from SHOPIFY_STORE and SHOPIFY_ACCESS_TOKEN (environment or .env).`,
	SilenceUsage: true,
	RunE:         runFeed,
}

var categoryCmd = &cobra.Command{
	Use:   "category [product type...]",
	Short: "Show the AWIN category each product type resolves to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		applyFlags(cfg)

		categories, err := awin.LoadCategoryMap(cfg.CategoryMapPath)
		if err != nil {
			return err
		}
		for _, label := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", label, categories.Resolve(label))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&rawOutput, "raw-out", "", "raw catalog CSV path (default $RAW_OUTPUT)")
	rootCmd.Flags().StringVar(&feedOutput, "out", "", "full feed CSV path (default $FEED_OUTPUT)")
	rootCmd.Flags().StringVar(&minimalOutput, "minimal-out", "", "minimal feed CSV path (default $MINIMAL_FEED_OUTPUT)")
	rootCmd.Flags().BoolVar(&noPublish, "no-publish", false, "do not publish a feed.generated event even if KAFKA_BROKERS is set")
	rootCmd.PersistentFlags().StringVar(&categoryMap, "categories", "", "category map YAML (default $CATEGORY_MAP_PATH, else built-in)")

	rootCmd.AddCommand(categoryCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	applyFlags(cfg)

	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogJSON)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	categories, err := awin.LoadCategoryMap(cfg.CategoryMapPath)
	if err != nil {
		return err
	}

	var publisher *events.Publisher
	if !noPublish {
		publisher = events.NewPublisher(cfg.KafkaBrokerList(), logger)
		defer publisher.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := shopify.NewClient(cfg.ShopifyStore, cfg.ShopifyAPIVersion, cfg.ShopifyAccessToken, logger)
	pipeline := processors.NewPipeline(cfg, logger, client, categories, publisher)

	result, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Run %s: exported %d of %d products", result.RunID, result.Exported, result.Fetched)
	return nil
}

func applyFlags(cfg *config.Config) {
	if rawOutput != "" {
		cfg.RawOutput = rawOutput
	}
	if feedOutput != "" {
		cfg.FeedOutput = feedOutput
	}
	if minimalOutput != "" {
		cfg.MinimalFeedOutput = minimalOutput
	}
	if categoryMap != "" {
		cfg.CategoryMapPath = categoryMap
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
