package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
)

const keyPrefix = "geocode:"

// RedisCache implements domain.GeoCache on Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-backed geocode cache
func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached entry for a mention, or (nil, nil) on a miss
func (c *RedisCache) Get(ctx context.Context, mention string) (*domain.CachedPlace, error) {
	val, err := c.client.Get(ctx, keyPrefix+mention).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rediscache: get failed: %w", err)
	}

	var entry domain.CachedPlace
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, fmt.Errorf("rediscache: corrupt entry: %w", err)
	}
	return &entry, nil
}

// Set stores a resolution result with the configured TTL
func (c *RedisCache) Set(ctx context.Context, mention string, entry domain.CachedPlace) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("rediscache: marshal failed: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+mention, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("rediscache: set failed: %w", err)
	}
	return nil
}

// Health checks Redis connectivity
func (c *RedisCache) Health(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("rediscache: ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
