package disk

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/countryflag/countryflag/internal/cache"
)

const indexFile = "index.json"

// Cache implements cache.Cache backed by a directory on the filesystem:
// one JSON file per key (named by a hash of the key) plus a single index
// file mapping keys to filenames. The index is persisted after every
// mutation and is the durable record of which entries exist, so a reused
// directory survives process restarts.
type Cache struct {
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	index map[string]string
	hits  int64
}

// New creates a disk cache rooted at dir. The path is home-expanded and
// resolved to an absolute path, then created if absent. Construction fails
// with a cache.InitError if the directory cannot be created or an existing
// index file is unreadable.
func New(dir string, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := normalizePath(dir)
	if err != nil {
		return nil, &cache.InitError{Err: err}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &cache.InitError{Err: err}
	}

	c := &Cache{
		dir:    dir,
		logger: logger,
		index:  make(map[string]string),
	}

	indexPath := filepath.Join(dir, indexFile)
	data, err := os.ReadFile(indexPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Fresh directory, empty index.
	case err != nil:
		return nil, &cache.InitError{Err: err}
	default:
		if err := json.Unmarshal(data, &c.index); err != nil {
			return nil, &cache.InitError{Err: fmt.Errorf("corrupt index file %s: %w", indexPath, err)}
		}
	}

	return c, nil
}

// normalizePath expands a leading ~ to the user home directory and resolves
// the result to an absolute path.
func normalizePath(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~"+string(os.PathSeparator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Abs(dir)
}

// filenameFor hashes the key so the value filename never contains
// filesystem-invalid characters.
func filenameFor(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:]) + ".json"
}

// saveIndexLocked persists the index with a write-to-temp-then-rename so a
// crash mid-write never leaves a corrupted index: the old file stays valid
// until the rename succeeds. The temp file is removed on every failure path.
// Callers must hold c.mu.
func (c *Cache) saveIndexLocked() error {
	data, err := json.Marshal(c.index)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(c.dir, indexFile)
	tmpPath := indexPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, indexPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Get retrieves a value by key. A key whose backing file has gone missing
// (external tampering, partial write) is self-healed: the stale index entry
// is dropped and the call reports a miss. A present-but-corrupt value file
// is a hard failure surfaced as a cache.ReadError naming the key. Hits are
// counted inside the critical section, at the point of a successful
// retrieval of a real value.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filename, exists := c.index[key]
	if !exists {
		return nil, false, nil
	}

	path := filepath.Join(c.dir, filename)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		delete(c.index, key)
		if saveErr := c.saveIndexLocked(); saveErr != nil {
			c.logger.Warn("failed to persist index after healing stale entry",
				zap.String("key", key),
				zap.Error(saveErr))
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, &cache.ReadError{Key: key, Err: err}
	}

	if value == nil {
		return nil, false, nil
	}

	c.hits++
	return value, true, nil
}

// Set writes the value file first and updates the index only after the
// write succeeds. If persisting the index then fails, the just-written
// value file is rolled back so no entry exists on disk without a
// corresponding index record.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	filename := filenameFor(key)
	path := filepath.Join(c.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &cache.WriteError{Key: key, Err: err}
	}

	previous, hadPrevious := c.index[key]
	c.index[key] = filename
	if err := c.saveIndexLocked(); err != nil {
		if hadPrevious {
			c.index[key] = previous
		} else {
			delete(c.index, key)
		}
		if removeErr := os.Remove(path); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			c.logger.Warn("failed to roll back value file after index write failure",
				zap.String("key", key),
				zap.Error(removeErr))
		}
		return &cache.WriteError{Key: key, Err: err}
	}

	return nil
}

// Delete removes the index entry and persists the index before touching the
// filesystem, then releases the lock for the physical file removal so other
// threads are not serialized behind disk latency. Deleting a missing key is
// a no-op.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()

	filename, exists := c.index[key]
	if !exists {
		c.mu.Unlock()
		return nil
	}

	delete(c.index, key)
	if err := c.saveIndexLocked(); err != nil {
		c.index[key] = filename
		c.mu.Unlock()
		return &cache.WriteError{Key: key, Err: err}
	}
	c.mu.Unlock()

	if err := os.Remove(filepath.Join(c.dir, filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.logger.Warn("failed to delete value file",
			zap.String("key", key),
			zap.Error(err))
	}
	return nil
}

// Clear removes every known value file, resets the index and the hit
// counter under one lock acquisition. A copy of the filename set is taken
// before iterating so concurrent mutation of the index can never surface as
// a structural error.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	filenames := make([]string, 0, len(c.index))
	for _, filename := range c.index {
		filenames = append(filenames, filename)
	}

	for _, filename := range filenames {
		if err := os.Remove(filepath.Join(c.dir, filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("failed to delete value file during clear", zap.Error(err))
		}
	}

	c.index = make(map[string]string)
	c.hits = 0
	return c.saveIndexLocked()
}

// Contains reports whether the key is present in the index AND its backing
// file exists; both must hold. No hit-counter side effect.
func (c *Cache) Contains(ctx context.Context, key string) bool {
	c.mu.Lock()
	filename, exists := c.index[key]
	c.mu.Unlock()

	if !exists {
		return false
	}

	_, err := os.Stat(filepath.Join(c.dir, filename))
	return err == nil
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

// Dir returns the normalized cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// Ensure Cache implements the interfaces
var _ cache.Cache = (*Cache)(nil)
var _ cache.Instrumented = (*Cache)(nil)
