package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/feral-file/ip-search-agent/internal/domain"
)

// Entry is one recorded search and the response it produced
type Entry struct {
	ID          string              `json:"id"`
	Query       string              `json:"query,omitempty"`
	SearchType  string              `json:"searchType,omitempty"`
	Success     bool                `json:"success"`
	ParsedQuery *domain.ParsedQuery `json:"parsedQuery,omitempty"`
	Response    json.RawMessage     `json:"response"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Store keeps the most recent searches
//
//go:generate mockgen -source=store.go -destination=../mocks/history_store.go -package=mocks -mock_names=Store=MockHistoryStore
type Store interface {
	// Append records entry, assigning its ID and CreatedAt, and returns the stored entry.
	// The oldest entries are evicted once the store's capacity is reached.
	Append(ctx context.Context, entry Entry) (Entry, error)

	// Recent returns up to n of the newest entries, oldest first
	Recent(ctx context.Context, n int) ([]Entry, error)
}

func stamp(entry Entry, now time.Time) Entry {
	entry.ID = ulid.MustNewDefault(now).String()
	entry.CreatedAt = now.UTC()
	return entry
}
