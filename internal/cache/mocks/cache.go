package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Cache is a mock implementation of cache.Cache
type Cache struct {
	mock.Mock
}

// Get retrieves a value by key
func (m *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Bool(1), args.Error(2)
}

// Set stores a value under key
func (m *Cache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Delete removes a key
func (m *Cache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Clear removes every entry
func (m *Cache) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Contains reports whether a key exists
func (m *Cache) Contains(ctx context.Context, key string) bool {
	args := m.Called(ctx, key)
	return args.Bool(0)
}
