package ratelimiter

import (
	"context"
	"intake-service/internal/app/contracts"
	"sync"
	"time"
)

// MemoryStore keeps counters in process. Every instance of the service has
// its own budget.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*contracts.RateLimitEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*contracts.RateLimitEntry)}
}

func (s *MemoryStore) Hit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (contracts.RateLimitEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if ok && entry.ResetTime.Before(now) {
		delete(s.entries, key)
		ok = false
	}

	if !ok {
		entry = &contracts.RateLimitEntry{Count: 1, ResetTime: now.Add(window)}
		s.entries[key] = entry
		return *entry, true, nil
	}

	if entry.Count >= limit {
		return *entry, false, nil
	}
	entry.Count++
	return *entry, true, nil
}

func (s *MemoryStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if entry.ResetTime.Before(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len reports how many clients currently hold a window.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
