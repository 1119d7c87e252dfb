package adapter

import "time"

// TIMESTAMP_LAYOUT is the UTC millisecond layout of every timestamp the agent returns
const TIMESTAMP_LAYOUT = "2006-01-02T15:04:05.000Z"

// Clock defines an interface for time operations to enable mocking
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type systemClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Timestamp formats t in UTC with TIMESTAMP_LAYOUT
func Timestamp(t time.Time) string {
	return t.UTC().Format(TIMESTAMP_LAYOUT)
}
