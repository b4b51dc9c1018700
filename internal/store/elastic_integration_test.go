//go:build integration

package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rootsec1/meals-on-heels/internal/types"
)

func TestElasticStore_SeedAndAll_Integration(t *testing.T) {
	url := os.Getenv("ELASTICSEARCH_URL")
	if url == "" {
		url = "http://localhost:9200"
	}
	index := fmt.Sprintf("food_trucks_test_%d", time.Now().UnixNano())

	s, err := NewElasticStore(url, index, slog.Default())
	if err != nil {
		t.Fatalf("NewElasticStore() error = %v", err)
	}
	t.Cleanup(func() {
		_, _ = s.client.DeleteIndex(index).Do(context.Background())
	})

	ctx := context.Background()
	trucks := []types.FoodTruck{
		{LocationID: 2, Applicant: "Truck 2", Latitude: 37.7849, Longitude: -122.4094},
		{LocationID: 1, Applicant: "Truck 1", Latitude: 37.7749, Longitude: -122.4194},
	}

	t.Logf("Seeding index %s at %s", index, url)
	seeded, err := s.Seed(ctx, trucks)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if !seeded {
		t.Fatal("Seed() = false on an empty index")
	}

	seeded, err = s.Seed(ctx, trucks)
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if seeded {
		t.Error("second Seed() = true, want already seeded")
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}

	got, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("All() returned %d documents, want 2", len(got))
	}
	if got[0].LocationID != 1 || got[1].LocationID != 2 {
		t.Errorf("All() order = [%d %d], want [1 2]", got[0].LocationID, got[1].LocationID)
	}
}
