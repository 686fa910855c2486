package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Redis stores JSON-encoded values under a key prefix
type Redis[T any] struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing client
func NewRedis[T any](client *redis.Client, prefix string) *Redis[T] {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Redis[T]{client: client, prefix: prefix}
}

// Get returns the decoded value for key. Errors count as a miss.
func (r *Redis[T]) Get(ctx context.Context, key string) (T, bool) {
	var value T

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Redis get %s failed: %v", key, err)
		}
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("Redis value for %s is not valid JSON: %v", key, err)
		return value, false
	}
	return value, true
}

// Set stores value under key with SET EX semantics
func (r *Redis[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Redis encode %s failed: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		log.Printf("Redis set %s failed: %v", key, err)
	}
}

// Delete removes key
func (r *Redis[T]) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		log.Printf("Redis delete %s failed: %v", key, err)
	}
}
