package ttl

import (
	"context"
	"time"

	"github.com/countryflag/countryflag/internal/cache"
)

// envelope wraps a cached value with its expiry deadline. It is what the
// underlying backend actually stores, so expiry survives persistent
// backends too.
type envelope struct {
	Value     interface{} `json:"value"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Cache adds per-entry expiry on top of any cache.Cache by composition.
// Expired entries are deleted lazily on read; there is no background
// sweeper.
type Cache struct {
	backend cache.Cache
	ttl     time.Duration
	now     func() time.Time
}

// New wraps backend so every entry expires ttl after it is set
func New(backend cache.Cache, ttl time.Duration) *Cache {
	return &Cache{
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a value, treating expired entries as misses and deleting
// them on the way out.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	raw, ok, err := c.backend.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	var env envelope
	if err := cache.Decode(raw, &env); err != nil {
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	if c.now().After(env.ExpiresAt) {
		if err := c.backend.Delete(ctx, key); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	return env.Value, env.Value != nil, nil
}

// Set stores a value with the wrapper's TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.backend.Set(ctx, key, envelope{
		Value:     value,
		ExpiresAt: c.now().Add(c.ttl),
	})
}

// Delete removes a key from the underlying backend
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.backend.Delete(ctx, key)
}

// Clear removes every entry from the underlying backend
func (c *Cache) Clear(ctx context.Context) error {
	return c.backend.Clear(ctx)
}

// Contains reports whether an entry exists for key. Expiry is lazy, so an
// expired entry still reports present until a Get evicts it; Contains stays
// a pure read with no side effects.
func (c *Cache) Contains(ctx context.Context, key string) bool {
	return c.backend.Contains(ctx, key)
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)
