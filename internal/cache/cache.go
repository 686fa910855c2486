package cache

import (
	"context"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a fetched listing is reused
const DefaultTTL = 10 * time.Minute

// DefaultKeyPrefix namespaces keys written to Redis
const DefaultKeyPrefix = "ytpl:meta:"

// Store is a keyed cache. A zero ttl means the entry does not expire.
type Store[T any] interface {
	Get(ctx context.Context, key string) (T, bool)
	Set(ctx context.Context, key string, value T, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Options selects and configures a store
type Options struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// Open returns a Redis store when RedisAddr is set and answers PING,
// otherwise an in-memory store.
func Open[T any](ctx context.Context, opts Options) Store[T] {
	if opts.RedisAddr == "" {
		return NewMemory[T]()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Redis not available at %s, using in-memory cache: %v", opts.RedisAddr, err)
		_ = client.Close()
		return NewMemory[T]()
	}

	log.Printf("Redis cache connected at %s", opts.RedisAddr)
	return NewRedis[T](client, opts.KeyPrefix)
}
