package memory

import (
	"context"
	"sync"

	"github.com/countryflag/countryflag/internal/cache"
)

// Cache implements cache.Cache using an in-process map guarded by a single
// lock for the lifetime of the cache object.
type Cache struct {
	mu   sync.Mutex
	data map[string]interface{}
	hits int64
}

// New creates a new in-memory cache
func New() *Cache {
	return &Cache{
		data: make(map[string]interface{}),
	}
}

// Get retrieves a value by key. Hit counting is gated on a real value being
// found: a stored nil is reported as a miss and never registers as a hit.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, exists := c.data[key]
	if !exists || value == nil {
		return nil, false, nil
	}

	c.hits++
	return value, true, nil
}

// Set stores a value under key, unconditionally overwriting. It never
// touches the hit counter.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = value
	return nil
}

// Delete removes a key. Deleting a missing key is a no-op; hits accumulate
// independently of eviction.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

// Clear removes every entry. The hit counter is deliberately left alone;
// callers that want a full reset pair Clear with ResetHits.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]interface{})
	return nil
}

// Contains reports key presence with no hit-counter side effect. A key
// holding a stored nil still counts as present.
func (c *Cache) Contains(ctx context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.data[key]
	return exists
}

// Hits returns the number of cache hits recorded so far
func (c *Cache) Hits() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits
}

// ResetHits resets the hit counter to zero
func (c *Cache) ResetHits() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hits = 0
}

// Len returns the number of entries currently cached
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}

// Ensure Cache implements the interfaces
var _ cache.Cache = (*Cache)(nil)
var _ cache.Instrumented = (*Cache)(nil)
