package history

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/logger"
)

// RedisStore keeps entries in a capped Redis list, newest at the head
type RedisStore struct {
	client   adapter.RedisClient
	json     adapter.JSON
	clock    adapter.Clock
	key      string
	capacity int64
}

// NewRedisStore creates a Redis-backed store holding at most capacity entries under key
func NewRedisStore(client adapter.RedisClient, json adapter.JSON, clock adapter.Clock, key string, capacity int) *RedisStore {
	if capacity < 1 {
		capacity = 1
	}
	return &RedisStore{
		client:   client,
		json:     json,
		clock:    clock,
		key:      key,
		capacity: int64(capacity),
	}
}

func (s *RedisStore) Append(ctx context.Context, entry Entry) (Entry, error) {
	entry = stamp(entry, s.clock.Now())

	data, err := s.json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := s.client.PushCapped(ctx, s.key, data, s.capacity); err != nil {
		return Entry{}, fmt.Errorf("failed to push history entry: %w", err)
	}
	return entry, nil
}

func (s *RedisStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 || int64(n) > s.capacity {
		n = int(s.capacity)
	}

	values, err := s.client.Range(ctx, s.key, 0, int64(n-1))
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	// the list is newest first
	entries := make([]Entry, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		var entry Entry
		if err := s.json.Unmarshal([]byte(values[i]), &entry); err != nil {
			logger.WarnCtx(ctx, "Skipping malformed history entry", zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
