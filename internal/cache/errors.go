package cache

import "fmt"

// InitError is returned when a backend cannot be constructed: the cache
// directory cannot be created, an existing index file is unreadable, or the
// backing store cannot be opened. Fatal to construction.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("cache initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ReadError is returned when the value stored for a specific key is corrupt.
// It names the offending key; the rest of the cache remains usable.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cache read failed for key %q: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is returned when a value cannot be serialized or persisted for
// a specific key
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cache write failed for key %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
