package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Data source names accepted by data.source
const (
	DataSourceFile          = "file"
	DataSourceElasticsearch = "elasticsearch"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Search        SearchConfig
	Data          DataConfig
	Elasticsearch ElasticsearchConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// SearchConfig holds proximity search defaults
type SearchConfig struct {
	DefaultRadiusKm float64 // radius used when a request omits one
}

// DataConfig selects where food truck records come from
type DataConfig struct {
	Source string // file, elasticsearch
	Path   string // seed file (.csv or .xlsx) for the file source
}

// ElasticsearchConfig locates the index used by the elasticsearch source
type ElasticsearchConfig struct {
	URL   string
	Index string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.meals-on-heels")

	// Set defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("search.defaultRadiusKm", 5.0)
	v.SetDefault("data.source", DataSourceFile)
	v.SetDefault("data.path", "data/food_truck_dataset.csv")
	v.SetDefault("elasticsearch.url", "http://localhost:9200")
	v.SetDefault("elasticsearch.index", "food_trucks")

	// Read from environment variables, e.g. MEALS_ON_HEELS_SERVER_PORT
	v.SetEnvPrefix("MEALS_ON_HEELS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the application cannot start with
func (c *Config) Validate() error {
	if c.Search.DefaultRadiusKm <= 0 {
		return fmt.Errorf("search.defaultRadiusKm must be positive, got %v", c.Search.DefaultRadiusKm)
	}

	switch strings.ToLower(c.Data.Source) {
	case DataSourceFile:
		if c.Data.Path == "" {
			return errors.New("data.path is required for the file data source")
		}
	case DataSourceElasticsearch:
		if c.Elasticsearch.URL == "" || c.Elasticsearch.Index == "" {
			return errors.New("elasticsearch.url and elasticsearch.index are required for the elasticsearch data source")
		}
	default:
		return fmt.Errorf("unknown data.source %q", c.Data.Source)
	}

	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
