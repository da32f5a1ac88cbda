package cache

import "context"

// Cache defines the capability set every backend implements. Callers never
// branch on backend identity; the five operations are the whole contract.
type Cache interface {
	// Get retrieves a value by key. The boolean reports whether a real
	// value was found; a stored nil is reported as a miss. A non-nil error
	// indicates structural corruption (e.g. an unreadable value file), not
	// a plain miss.
	Get(ctx context.Context, key string) (interface{}, bool, error)

	// Set stores a value under key, overwriting any previous value
	Set(ctx context.Context, key string, value interface{}) error

	// Delete removes a key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry
	Clear(ctx context.Context) error

	// Contains reports whether a key exists. It is a pure read and never
	// influences hit statistics.
	Contains(ctx context.Context, key string) bool
}

// Instrumented is implemented by backends that count cache hits. A hit is
// counted at the point a real (non-nil) value is successfully retrieved;
// misses, Contains checks, Set, Delete and (for the memory backend) Clear
// never touch the counter.
type Instrumented interface {
	// Hits returns the number of cache hits recorded so far
	Hits() int64

	// ResetHits resets the hit counter to zero
	ResetHits()
}
