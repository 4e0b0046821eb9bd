package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for development and tests. Markers
// live in a map and are purged lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]time.Time
}

// NewMemoryStore creates a store whose markers expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Hit(_ context.Context, ip string) (bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if deadline, ok := s.entries[ip]; ok && now.Before(deadline) {
		return true, nil
	}

	// Drop any expired markers while we hold the lock
	for k, deadline := range s.entries {
		if !now.Before(deadline) {
			delete(s.entries, k)
		}
	}

	s.entries[ip] = now.Add(s.ttl)
	return false, nil
}
