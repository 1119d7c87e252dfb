package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ip-search-agent/internal/config"
	"github.com/feral-file/ip-search-agent/internal/logger"
)

// Provider names
const (
	PROVIDER_STORY = "story"
	PROVIDER_LLM   = "llm"
)

// ErrProxyClosed is returned for requests submitted after Close
var ErrProxyClosed = errors.New("rate limit proxy is closed")

// RequestFunc is a function that performs the actual API request
// It receives a context and returns the result and any error
type RequestFunc func(ctx context.Context) (interface{}, error)

// Proxy defines the interface for rate-limiting proxy
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request waits for a token of providerName and then runs fn.
	// Providers without a limit run immediately.
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close rejects every later request
	Close() error
}

// proxy is the concrete implementation of the rate-limiting proxy
type proxy struct {
	limiters map[string]*providerLimiter
	closed   atomic.Bool
}

// providerLimiter holds the rate limiting state for a single provider
type providerLimiter struct {
	name         string
	limiter      *rate.Limiter
	maxQueueTime time.Duration
}

// NewProxy creates a new rate-limiting proxy. A provider with a non-positive
// RequestsPerSecond is left unlimited.
func NewProxy(providers map[string]config.RateLimitConfig) Proxy {
	limiters := make(map[string]*providerLimiter)
	for name, cfg := range providers {
		if cfg.RequestsPerSecond <= 0 {
			continue
		}
		burst := max(cfg.Burst, 1)
		limiters[name] = &providerLimiter{
			name:         name,
			limiter:      rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
			maxQueueTime: cfg.MaxQueueTime,
		}
		logger.Info("Rate limit configured",
			zap.String("provider", name),
			zap.Float64("requests_per_second", cfg.RequestsPerSecond),
			zap.Int("burst", burst),
			zap.Duration("max_queue_time", cfg.MaxQueueTime),
		)
	}

	return &proxy{limiters: limiters}
}

// Request submits a rate-limited request for execution and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	// Execute the request
	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	return result.(T), nil
}

// Request blocks until:
// 1. A token is acquired and the request completes
// 2. The context is canceled
// 3. The maximum queue time is exceeded
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	// Check if proxy is closed
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return fn(ctx)
	}

	if err := limiter.acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limit for %s: %w", providerName, err)
	}

	// No timeout wrapper here, the HTTP adapter handles it
	return fn(ctx)
}

// acquire waits for a token, bounded by the provider's maximum queue time
func (l *providerLimiter) acquire(ctx context.Context) error {
	if l.maxQueueTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.maxQueueTime)
		defer cancel()
	}
	return l.limiter.Wait(ctx)
}

// Close gracefully shuts down the proxy
func (p *proxy) Close() error {
	p.closed.Store(true)
	return nil
}
