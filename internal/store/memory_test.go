package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rootsec1/meals-on-heels/internal/types"
)

func TestMemoryStore_All(t *testing.T) {
	trucks := []types.FoodTruck{
		{LocationID: 1, Applicant: "Truck 1", Latitude: 37.7749, Longitude: -122.4194},
		{LocationID: 2, Applicant: "Truck 2", Latitude: 37.7849, Longitude: -122.4094},
	}

	s := NewMemoryStore(trucks)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	got, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All() unexpected error = %v", err)
	}
	if diff := cmp.Diff(trucks, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	// the store holds its own copy
	trucks[0].Applicant = "changed"
	got, _ = s.All(context.Background())
	if got[0].Applicant != "Truck 1" {
		t.Errorf("store was modified through the caller's slice: %q", got[0].Applicant)
	}
}

func TestMemoryStore_ReplaceKeepsSnapshots(t *testing.T) {
	s := NewMemoryStore([]types.FoodTruck{{LocationID: 1}})

	before, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All() unexpected error = %v", err)
	}

	s.Replace([]types.FoodTruck{{LocationID: 2}, {LocationID: 3}})

	if len(before) != 1 || before[0].LocationID != 1 {
		t.Errorf("earlier snapshot changed after Replace: %+v", before)
	}

	after, _ := s.All(context.Background())
	if len(after) != 2 {
		t.Errorf("All() after Replace returned %d records, want 2", len(after))
	}
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := NewMemoryStore(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.All(ctx); err == nil {
		t.Error("All() expected error for canceled context")
	}
}

func TestMemoryStore_Empty(t *testing.T) {
	s := NewMemoryStore(nil)

	got, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All() unexpected error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("All() = %#v, want empty non-nil slice", got)
	}
}
