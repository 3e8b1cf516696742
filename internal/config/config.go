package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// ErrMissingConfig is marked on the error returned by Validate.
var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	// Shopify
	ShopifyStore       string
	ShopifyAccessToken string
	ShopifyAPIVersion  string

	// Feed
	StorefrontURL   string
	Currency        string
	Language        string
	CategoryMapPath string

	// Output files
	RawOutput         string
	FeedOutput        string
	MinimalFeedOutput string

	// Kafka
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Environment
	Env      string
	LogLevel string
	LogJSON  bool
}

// Load reads .env (if present) and the process environment. It does not
// validate; call Validate before talking to Shopify.
func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		ShopifyStore:       getEnv("SHOPIFY_STORE", ""),
		ShopifyAccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", getEnv("SHOPIFY_PASSWORD", "")),
		ShopifyAPIVersion:  getEnv("SHOPIFY_API_VERSION", "2024-01"),
		StorefrontURL:      strings.TrimRight(getEnv("STOREFRONT_URL", "https://www.sarahalexis.com"), "/"),
		Currency:           getEnv("FEED_CURRENCY", "USD"),
		Language:           getEnv("FEED_LANGUAGE", "en"),
		CategoryMapPath:    getEnv("CATEGORY_MAP_PATH", ""),
		RawOutput:          getEnv("RAW_OUTPUT", "shopify_data.csv"),
		FeedOutput:         getEnv("FEED_OUTPUT", "awin_product_feed.csv"),
		MinimalFeedOutput:  getEnv("MINIMAL_FEED_OUTPUT", "awin_product_feed_minimal.csv"),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		APIPort:            getEnv("API_PORT", "8080"),
		APIHost:            getEnv("API_HOST", "0.0.0.0"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogJSON:            getEnvAsBool("LOG_JSON", false),
	}, nil
}

// Validate reports every required value that is missing, by its environment
// variable name.
func (c *Config) Validate() error {
	var missing []string
	if c.ShopifyStore == "" {
		missing = append(missing, "SHOPIFY_STORE")
	}
	if c.ShopifyAccessToken == "" {
		missing = append(missing, "SHOPIFY_ACCESS_TOKEN")
	}
	if len(missing) == 0 {
		return nil
	}

	err := errors.Mark(errors.Newf("missing required configuration: %s", strings.Join(missing, ", ")), ErrMissingConfig)
	return errors.WithHint(err, "set the variables in the environment or in a .env file")
}

// KafkaBrokerList splits KAFKA_BROKERS on commas. Empty means events are disabled.
func (c *Config) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
