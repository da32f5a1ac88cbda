package redis

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/go-redis/redis/v8"

	"github.com/countryflag/countryflag/internal/cache"
)

// Cache implements cache.Cache on top of a Redis client. Values are stored
// as JSON under a configurable key prefix so several caches can share one
// Redis database. The hit counter is process-local, matching the other
// backends.
type Cache struct {
	client *redis.Client
	prefix string
	hits   int64
}

// New creates a Redis-backed cache. The prefix namespaces every key; an
// empty prefix is allowed but means Clear will scan the whole keyspace.
func New(client *redis.Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

func (c *Cache) redisKey(key string) string {
	return c.prefix + key
}

// Get retrieves a value by key. redis.Nil is a plain miss; a stored JSON
// null is reported as a miss without counting a hit.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	data, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	if value == nil {
		return nil, false, nil
	}

	atomic.AddInt64(&c.hits, 1)
	return value, true, nil
}

// Set stores a value under key with no expiry
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}
	if err := c.client.Set(ctx, c.redisKey(key), data, 0).Err(); err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}
	return nil
}

// Delete removes a key. Deleting a missing key is a no-op.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.redisKey(key)).Err(); err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}
	return nil
}

// Clear removes every key under the prefix using SCAN, and resets the hit
// counter to match the disk backend's clear semantics.
func (c *Cache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	atomic.StoreInt64(&c.hits, 0)
	return nil
}

// Contains reports whether a key exists, with no hit-counter side effect
func (c *Cache) Contains(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, c.redisKey(key)).Result()
	return err == nil && n > 0
}

// Hits returns the number of cache hits recorded by this process
func (c *Cache) Hits() int64 {
	return atomic.LoadInt64(&c.hits)
}

// ResetHits resets the hit counter to zero
func (c *Cache) ResetHits() {
	atomic.StoreInt64(&c.hits, 0)
}

// Ensure Cache implements the interfaces
var _ cache.Cache = (*Cache)(nil)
var _ cache.Instrumented = (*Cache)(nil)
