package providers

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under a key.
// Callers treat absence as "first run" and substitute a defined default.
var ErrKeyNotFound = errors.New("store: key not found")

// StoreProvider is a process-external key-value store of JSON-serialized
// collections. Writes are whole-value replacements; values live until
// replaced or deleted.
type StoreProvider interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks if a key holds a value.
	Exists(ctx context.Context, key string) (bool, error)
}
