package nearby

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/rootsec1/meals-on-heels/internal/store"
	"github.com/rootsec1/meals-on-heels/internal/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service finds food trucks near a point
type Service interface {
	Search(ctx context.Context, query Query) ([]types.SearchResult, error)
}

type nearbyService struct {
	repository store.Repository
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewNearbyService creates a search service over the given repository
func NewNearbyService(logger *slog.Logger, repository store.Repository) Service {
	return &nearbyService{
		repository: repository,
		logger:     logger.With("component", "nearby-service"),
		tracer:     otel.Tracer("meals-on-heels/nearby"),
	}
}

// Search loads the full collection and filters it in memory
func (s *nearbyService) Search(ctx context.Context, query Query) ([]types.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "nearby.search",
		trace.WithAttributes(
			attribute.Float64("search.latitude", query.Center.Latitude),
			attribute.Float64("search.longitude", query.Center.Longitude),
			attribute.Float64("search.radius_km", query.RadiusKm),
		),
	)
	defer span.End()

	trucks, err := s.repository.All(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load food trucks")
		s.logger.Error("failed to load food trucks", "error", err)
		return nil, errors.Wrap(err, "failed to load food trucks")
	}

	results := SearchNearby(query.Center.Latitude, query.Center.Longitude, query.RadiusKm, trucks)

	span.SetAttributes(
		attribute.Int("search.candidates", len(trucks)),
		attribute.Int("search.matches", len(results)),
	)
	s.logger.Debug("searched nearby food trucks",
		"center", query.Center.String(),
		"radius_km", query.RadiusKm,
		"candidates", len(trucks),
		"matches", len(results),
	)

	return results, nil
}
