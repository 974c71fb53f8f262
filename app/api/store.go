package api

import (
	"sync"
	"time"

	"github.com/bessnews/rss-digest/app/aggregator"
)

// Store holds the most recent aggregation result for the HTTP handlers.
type Store struct {
	mu        sync.RWMutex
	result    *aggregator.Result
	updatedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(result *aggregator.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.updatedAt = time.Now().UTC()
}

// Get returns the latest result, or nil when no run has completed yet.
func (s *Store) Get() *aggregator.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
