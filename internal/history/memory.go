package history

import (
	"context"
	"sync"

	"github.com/feral-file/ip-search-agent/internal/adapter"
)

// MemoryStore is a fixed-capacity ring buffer of entries
type MemoryStore struct {
	mu      sync.RWMutex
	clock   adapter.Clock
	entries []Entry
	next    int
	size    int
}

// NewMemoryStore creates an in-memory store holding at most capacity entries
func NewMemoryStore(capacity int, clock adapter.Clock) *MemoryStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryStore{
		clock:   clock,
		entries: make([]Entry, capacity),
	}
}

func (s *MemoryStore) Append(_ context.Context, entry Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry = stamp(entry, s.clock.Now())
	s.entries[s.next] = entry
	s.next = (s.next + 1) % len(s.entries)
	if s.size < len(s.entries) {
		s.size++
	}
	return entry, nil
}

func (s *MemoryStore) Recent(_ context.Context, n int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > s.size {
		n = s.size
	}

	recent := make([]Entry, 0, n)
	capacity := len(s.entries)
	for i := n; i > 0; i-- {
		recent = append(recent, s.entries[(s.next-i+capacity)%capacity])
	}
	return recent, nil
}
