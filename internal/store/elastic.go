package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olivere/elastic/v7"
	"github.com/rootsec1/meals-on-heels/internal/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	scrollPageSize = 500
	bulkBatchSize  = 1000
)

// foodTruckMapping keeps keyword-like fields out of full text analysis
const foodTruckMapping = `{
  "mappings": {
    "properties": {
      "location_id":   { "type": "long" },
      "applicant":     { "type": "text" },
      "facility_type": { "type": "keyword" },
      "cnn":           { "type": "long" },
      "address":       { "type": "text" },
      "permit":        { "type": "keyword" },
      "status":        { "type": "keyword" },
      "food_items":    { "type": "text" },
      "latitude":      { "type": "double" },
      "longitude":     { "type": "double" },
      "schedule_url":  { "type": "keyword", "index": false },
      "created_at":    { "type": "date" },
      "updated_at":    { "type": "date" }
    }
  }
}`

// ElasticStore reads and seeds food trucks held in an Elasticsearch index
type ElasticStore struct {
	client *elastic.Client
	index  string
	logger *slog.Logger
	tracer trace.Tracer
}

// NewElasticStore connects to the cluster at url. Sniffing is disabled so the
// store works against single node and containerised clusters.
func NewElasticStore(url, index string, logger *slog.Logger) (*ElasticStore, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create elasticsearch client for %s", url)
	}

	return &ElasticStore{
		client: client,
		index:  index,
		logger: logger.With("component", "elastic-store", "index", index),
		tracer: otel.Tracer("meals-on-heels/store"),
	}, nil
}

// All scrolls through every document in the index ordered by location id
func (s *ElasticStore) All(ctx context.Context) ([]types.FoodTruck, error) {
	ctx, span := s.tracer.Start(ctx, "elastic.all",
		trace.WithAttributes(attribute.String("elastic.index", s.index)),
	)
	defer span.End()

	scroll := s.client.Scroll(s.index).
		Query(elastic.NewMatchAllQuery()).
		Sort("location_id", true).
		Size(scrollPageSize)
	defer func() {
		_ = scroll.Clear(context.Background())
	}()

	trucks := make([]types.FoodTruck, 0)
	for {
		res, err := scroll.Do(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scroll failed")
			return nil, errors.Wrapf(err, "failed to scroll index %s", s.index)
		}

		for _, hit := range res.Hits.Hits {
			var truck types.FoodTruck
			if err := json.Unmarshal(hit.Source, &truck); err != nil {
				s.logger.Warn("skipping undecodable document", "id", hit.Id, "error", err)
				continue
			}
			if err := Validate(truck); err != nil {
				s.logger.Warn("skipping invalid document", "id", hit.Id, "error", err)
				continue
			}
			trucks = append(trucks, truck)
		}
	}

	span.SetAttributes(attribute.Int("elastic.documents", len(trucks)))
	span.SetStatus(codes.Ok, "")
	return trucks, nil
}

// Count returns the number of documents in the index, 0 when it does not exist
func (s *ElasticStore) Count(ctx context.Context) (int64, error) {
	exists, err := s.client.IndexExists(s.index).Do(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to check index %s", s.index)
	}
	if !exists {
		return 0, nil
	}

	count, err := s.client.Count(s.index).Do(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count index %s", s.index)
	}
	return count, nil
}

// Seed creates the index when needed and bulk indexes trucks by location id.
// An index that already holds documents is left untouched and seeded is false.
func (s *ElasticStore) Seed(ctx context.Context, trucks []types.FoodTruck) (seeded bool, err error) {
	ctx, span := s.tracer.Start(ctx, "elastic.seed",
		trace.WithAttributes(
			attribute.String("elastic.index", s.index),
			attribute.Int("elastic.records", len(trucks)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "seed failed")
		}
		span.End()
	}()

	if err := s.ensureIndex(ctx); err != nil {
		return false, err
	}

	count, err := s.client.Count(s.index).Do(ctx)
	if err != nil {
		return false, errors.Wrapf(err, "failed to count index %s", s.index)
	}
	if count > 0 {
		s.logger.Info("food truck data already seeded", "documents", count)
		return false, nil
	}

	for start := 0; start < len(trucks); start += bulkBatchSize {
		end := min(start+bulkBatchSize, len(trucks))

		bulk := s.client.Bulk().Index(s.index).Refresh("true")
		for _, truck := range trucks[start:end] {
			bulk.Add(elastic.NewBulkIndexRequest().
				Id(strconv.FormatInt(truck.LocationID, 10)).
				Doc(truck))
		}

		resp, err := bulk.Do(ctx)
		if err != nil {
			return false, errors.Wrapf(err, "failed to bulk index records %d-%d", start, end)
		}
		if resp.Errors {
			failed := resp.Failed()
			first := ""
			if len(failed) > 0 && failed[0].Error != nil {
				first = failed[0].Error.Reason
			}
			return false, errors.Newf("bulk index reported %d failures, first: %s", len(failed), first)
		}
	}

	s.logger.Info("seeded food trucks", "documents", len(trucks))
	return true, nil
}

func (s *ElasticStore) ensureIndex(ctx context.Context) error {
	exists, err := s.client.IndexExists(s.index).Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to check index %s", s.index)
	}
	if exists {
		return nil
	}

	created, err := s.client.CreateIndex(s.index).BodyString(foodTruckMapping).Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to create index %s", s.index)
	}
	if !created.Acknowledged {
		s.logger.Warn("index creation was not acknowledged")
	}
	return nil
}
