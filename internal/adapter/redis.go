package adapter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the list operations used against Redis to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// PushCapped prepends value to the list at key and trims the list to at most size entries
	PushCapped(ctx context.Context, key string, value []byte, size int64) error

	// Range returns the list entries between start and stop (inclusive)
	Range(ctx context.Context, key string, start, stop int64) ([]string, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping checks if Redis is reachable
func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// PushCapped runs LPUSH and LTRIM in one transaction so readers never see an over-long list
func (r *RealRedisClient) PushCapped(ctx context.Context, key string, value []byte, size int64) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, value)
		pipe.LTrim(ctx, key, 0, size-1)
		return nil
	})
	return err
}

// Range returns the list entries between start and stop (inclusive)
func (r *RealRedisClient) Range(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return r.client.LRange(ctx, key, start, stop).Result()
}

// Close closes the Redis connection
func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
