package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Resolver strategy names accepted in configuration.
const (
	StrategyStatic = "static"
	StrategyAI     = "ai"
	StrategyStore  = "store"
)

// Album fetch modes accepted in configuration.
const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	ListenAddr string `mapstructure:"LISTEN_ADDR"`

	// AlbumURL is the public photo album page the gallery is built from.
	AlbumURL       string `mapstructure:"ALBUM_URL"`
	AlbumFetchMode string `mapstructure:"ALBUM_FETCH_MODE"`

	// ResolverStrategy selects how photo metadata is produced: static
	// (curated table), ai (external classification), or store (durable
	// metadata store).
	ResolverStrategy string `mapstructure:"RESOLVER_STRATEGY"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	BadgerDBPath string `mapstructure:"BADGERDB_PATH"`

	// AdminKey is the shared secret required by the admin endpoints.
	AdminKey string `mapstructure:"ADMIN_KEY"`

	MaxPhotos            int `mapstructure:"MAX_PHOTOS"`
	CacheTTLSeconds      int `mapstructure:"CACHE_TTL_SECONDS"`
	ClassifyDelaySeconds int `mapstructure:"CLASSIFY_DELAY_SECONDS"`
	FetchTimeoutSeconds  int `mapstructure:"FETCH_TIMEOUT_SECONDS"`

	// Categories optionally overrides the gallery category labels.
	Categories []string `mapstructure:"CATEGORIES"`
}

// CacheTTL returns the gallery cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// ClassifyDelay returns the fixed spacing between classification calls.
func (c Config) ClassifyDelay() time.Duration {
	return time.Duration(c.ClassifyDelaySeconds) * time.Second
}

// FetchTimeout returns the per-request timeout for outbound fetches.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Allow reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = viper.ReadInConfig()
	if err != nil {
		// Config file not found is fine when env vars carry the settings;
		// anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	// --- Validation and defaults ---
	if config.AlbumURL == "" {
		return Config{}, fmt.Errorf("ALBUM_URL is not set")
	}
	if config.AdminKey == "" {
		return Config{}, fmt.Errorf("ADMIN_KEY is not set")
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.AlbumFetchMode == "" {
		config.AlbumFetchMode = FetchModeHTTP
	}
	if config.AlbumFetchMode != FetchModeHTTP && config.AlbumFetchMode != FetchModeBrowser {
		return Config{}, fmt.Errorf("ALBUM_FETCH_MODE must be %q or %q", FetchModeHTTP, FetchModeBrowser)
	}
	if config.ResolverStrategy == "" {
		config.ResolverStrategy = StrategyStatic
	}
	switch config.ResolverStrategy {
	case StrategyStatic, StrategyStore:
	case StrategyAI:
		if config.GeminiAPIKey == "" {
			return Config{}, fmt.Errorf("GEMINI_API_KEY is required when RESOLVER_STRATEGY is %q", StrategyAI)
		}
	default:
		return Config{}, fmt.Errorf("unknown RESOLVER_STRATEGY %q", config.ResolverStrategy)
	}
	if config.GeminiModel == "" {
		config.GeminiModel = "gemini-1.5-flash-8b"
	}
	if config.BadgerDBPath == "" {
		config.BadgerDBPath = "./badger_data"
	}
	if config.MaxPhotos <= 0 {
		config.MaxPhotos = 30
	}
	if config.CacheTTLSeconds <= 0 {
		config.CacheTTLSeconds = 3600
	}
	if config.ClassifyDelaySeconds <= 0 {
		// 5 requests/minute budget needs at least 12s spacing.
		config.ClassifyDelaySeconds = 13
	}
	if config.FetchTimeoutSeconds <= 0 {
		config.FetchTimeoutSeconds = 30
	}

	return config, nil
}
