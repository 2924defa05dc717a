package rediscache

import (
	"context"
	"sync"
	"time"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
)

// MemoryCache implements domain.GeoCache in process memory. Used when
// Redis is not configured or unreachable at startup; entries are lost
// on restart, which is acceptable for a TTL'd lookup cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	value     domain.CachedPlace
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory geocode cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get returns the cached entry for a mention, or (nil, nil) on a miss
func (c *MemoryCache) Get(ctx context.Context, mention string) (*domain.CachedPlace, error) {
	c.mu.RLock()
	entry, ok := c.entries[mention]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, mention)
		c.mu.Unlock()
		return nil, nil
	}

	value := entry.value
	return &value, nil
}

// Set stores a resolution result with the configured TTL
func (c *MemoryCache) Set(ctx context.Context, mention string, entry domain.CachedPlace) error {
	c.mu.Lock()
	c.entries[mention] = memoryEntry{
		value:     entry,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
	return nil
}

// Health always returns nil for the in-memory cache
func (c *MemoryCache) Health(ctx context.Context) error {
	return nil
}
