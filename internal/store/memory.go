package store

import (
	"context"
	"sync"

	"github.com/rootsec1/meals-on-heels/internal/types"
)

// MemoryStore keeps the whole collection in memory. Writers swap in a new
// slice rather than editing the current one, so a slice returned by All
// stays a consistent snapshot for as long as the caller holds it.
type MemoryStore struct {
	mu     sync.RWMutex
	trucks []types.FoodTruck
}

func NewMemoryStore(trucks []types.FoodTruck) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(trucks)
	return s
}

// Replace installs a copy of trucks as the current collection
func (s *MemoryStore) Replace(trucks []types.FoodTruck) {
	snapshot := make([]types.FoodTruck, len(trucks))
	copy(snapshot, trucks)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trucks = snapshot
}

func (s *MemoryStore) All(ctx context.Context) ([]types.FoodTruck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trucks, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trucks)
}
