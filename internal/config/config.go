// Package config loads the application configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable, e.g. TXLEDGER_LOG_LEVEL.
const envPrefix = "txledger"

// Config holds every runtime setting of the application.
type Config struct {
	// LogLevel is the minimum level of the global logger (debug, info, warn,
	// error, panic, fatal).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TelemetryEnabled turns on OTLP metric and trace export.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// ActivityFeedURL is the base URL of the activity-history API.
	ActivityFeedURL string `envconfig:"ACTIVITY_FEED_URL" required:"true"`

	// RPCEndpoints maps chain ids to JSON-RPC node endpoints, e.g.
	// "1:https://mainnet.example,42161:https://arbitrum.example".
	RPCEndpoints map[int]string `envconfig:"RPC_ENDPOINTS"`

	// SyncInterval is the period of the background sync pipeline.
	SyncInterval time.Duration `envconfig:"SYNC_INTERVAL" default:"30s"`

	// Redis connection settings for the watchlist and snapshot storage.
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process(envPrefix, &cfg)
	return cfg, err
}
