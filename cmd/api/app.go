package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/rootsec1/meals-on-heels/internal/config"
	"github.com/rootsec1/meals-on-heels/internal/nearby"
	"github.com/rootsec1/meals-on-heels/internal/store"

	_ "github.com/rootsec1/meals-on-heels/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	nearbyService nearby.Service
	cfg           *config.Config
}

// NewApp creates a new application with the repository selected by configuration
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	repository, err := newRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewAppWithService(cfg, logger, nearby.NewNearbyService(logger, repository)), nil
}

// NewAppWithService creates a new application around an existing search service.
// This is useful for testing with in-memory data.
func NewAppWithService(cfg *config.Config, logger *slog.Logger, nearbyService nearby.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(accessLog(logger))

	app := &App{
		router:        router,
		logger:        logger,
		nearbyService: nearbyService,
		cfg:           cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

func newRepository(cfg *config.Config, logger *slog.Logger) (store.Repository, error) {
	switch strings.ToLower(cfg.Data.Source) {
	case config.DataSourceElasticsearch:
		es, err := store.NewElasticStore(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index, logger)
		if err != nil {
			return nil, err
		}
		count, err := es.Count(context.Background())
		if err != nil {
			return nil, err
		}
		logger.Info("using elasticsearch data source",
			"url", cfg.Elasticsearch.URL,
			"index", cfg.Elasticsearch.Index,
			"documents", count,
		)
		return es, nil

	case config.DataSourceFile:
		trucks, report, err := store.NewLoader(logger).ReadFile(cfg.Data.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded food truck data",
			"path", cfg.Data.Path,
			"loaded", report.Loaded,
			"skipped", report.Skipped,
		)
		return store.NewMemoryStore(trucks), nil

	default:
		return nil, errors.Newf("unknown data source %q", cfg.Data.Source)
	}
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
