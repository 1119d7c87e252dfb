package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc with millis", time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC), "2026-03-14T09:26:53.589Z"},
		{"zero millis kept", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), "2026-01-02T03:04:05.000Z"},
		{"sub-millisecond truncated", time.Date(2026, 1, 2, 3, 4, 5, 999_999, time.UTC), "2026-01-02T03:04:05.000Z"},
		{"converted to utc", time.Date(2026, 3, 14, 16, 26, 53, 0, jakarta), "2026-03-14T09:26:53.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Timestamp(tt.in))
		})
	}
}

func TestClock_Since(t *testing.T) {
	c := NewClock()
	start := c.Now().Add(-time.Second)

	assert.GreaterOrEqual(t, c.Since(start), time.Second)
}
