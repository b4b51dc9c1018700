package config

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want release", cfg.Server.GinMode)
	}
	if cfg.Search.DefaultRadiusKm != 5 {
		t.Errorf("Search.DefaultRadiusKm = %v, want 5", cfg.Search.DefaultRadiusKm)
	}
	if cfg.Data.Source != DataSourceFile {
		t.Errorf("Data.Source = %q, want %q", cfg.Data.Source, DataSourceFile)
	}
	if cfg.Elasticsearch.Index != "food_trucks" {
		t.Errorf("Elasticsearch.Index = %q, want food_trucks", cfg.Elasticsearch.Index)
	}
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MEALS_ON_HEELS_SERVER_PORT", "9090")
	t.Setenv("MEALS_ON_HEELS_SEARCH_DEFAULTRADIUSKM", "2.5")
	t.Setenv("MEALS_ON_HEELS_DATA_SOURCE", "elasticsearch")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.GetServerAddr() != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", cfg.GetServerAddr())
	}
	if cfg.Search.DefaultRadiusKm != 2.5 {
		t.Errorf("Search.DefaultRadiusKm = %v, want 2.5", cfg.Search.DefaultRadiusKm)
	}
	if cfg.Data.Source != DataSourceElasticsearch {
		t.Errorf("Data.Source = %q, want %q", cfg.Data.Source, DataSourceElasticsearch)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Search:        SearchConfig{DefaultRadiusKm: 5},
			Data:          DataConfig{Source: DataSourceFile, Path: "trucks.csv"},
			Elasticsearch: ElasticsearchConfig{URL: "http://localhost:9200", Index: "food_trucks"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid file source", func(c *Config) {}, false},
		{"valid elasticsearch source", func(c *Config) { c.Data.Source = DataSourceElasticsearch }, false},
		{"zero default radius", func(c *Config) { c.Search.DefaultRadiusKm = 0 }, true},
		{"negative default radius", func(c *Config) { c.Search.DefaultRadiusKm = -1 }, true},
		{"unknown source", func(c *Config) { c.Data.Source = "postgres" }, true},
		{"file source without path", func(c *Config) { c.Data.Path = "" }, true},
		{"elasticsearch without index", func(c *Config) {
			c.Data.Source = DataSourceElasticsearch
			c.Elasticsearch.Index = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "json"}}
			logger := cfg.NewLogger()

			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("logger not enabled at %v", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-1) {
				t.Errorf("logger enabled below %v", tt.want)
			}
		})
	}
}
