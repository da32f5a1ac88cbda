package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"

	"github.com/countryflag/countryflag/internal/cache"
)

// Cache implements cache.Cache backed by a single SQLite table. Values are
// stored as JSON text keyed by the cache key, so entries survive process
// restarts as long as the database file is reused. The hit counter is
// process-local, matching the other backends.
type Cache struct {
	db   *sql.DB
	hits int64
}

// New opens (or creates) the SQLite database at databasePath and applies
// pending migrations. Construction fails with a cache.InitError if the
// database cannot be opened or migrated.
func New(databasePath string) (*Cache, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, &cache.InitError{Err: fmt.Errorf("failed to open database: %w", err)}
	}

	// WAL mode keeps concurrent readers off the writer's back
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, &cache.InitError{Err: fmt.Errorf("failed to enable WAL mode: %w", err)}
	}

	c := &Cache{db: db}
	if err := c.runMigrations(context.Background()); err != nil {
		db.Close()
		return nil, &cache.InitError{Err: fmt.Errorf("failed to run migrations: %w", err)}
	}

	return c, nil
}

// Get retrieves a value by key. A stored JSON null is reported as a miss
// without counting a hit; a row that no longer parses as JSON surfaces as a
// cache.ReadError naming the key.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	var data string
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM cache_entries WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	var value interface{}
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	if value == nil {
		return nil, false, nil
	}

	atomic.AddInt64(&c.hits, 1)
	return value, true, nil
}

// Set stores a value under key, overwriting any previous value
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data))
	if err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}
	return nil
}

// Delete removes a key. Deleting a missing key is a no-op.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx,
		"DELETE FROM cache_entries WHERE key = ?", key); err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}
	return nil
}

// Clear removes every entry and resets the hit counter, matching the disk
// backend's clear semantics.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries"); err != nil {
		return err
	}
	atomic.StoreInt64(&c.hits, 0)
	return nil
}

// Contains reports whether a key exists, with no hit-counter side effect
func (c *Cache) Contains(ctx context.Context, key string) bool {
	var count int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cache_entries WHERE key = ?", key).Scan(&count)
	return err == nil && count > 0
}

// Hits returns the number of cache hits recorded by this process
func (c *Cache) Hits() int64 {
	return atomic.LoadInt64(&c.hits)
}

// ResetHits resets the hit counter to zero
func (c *Cache) ResetHits() {
	atomic.StoreInt64(&c.hits, 0)
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}

// Ensure Cache implements the interfaces
var _ cache.Cache = (*Cache)(nil)
var _ cache.Instrumented = (*Cache)(nil)
