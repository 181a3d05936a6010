package store

import (
	"context"
	"sync"

	"github.com/kulinernusantara/backend/internal/domain/providers"
)

// MemoryAdapter provides an in-memory implementation of the StoreProvider
// interface. Used in tests and as the degraded mode when Redis is
// unavailable: the application keeps working, the data just does not survive
// a restart.
type MemoryAdapter struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryAdapter constructs an empty MemoryAdapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string][]byte)}
}

// Get retrieves the value stored under key
func (m *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, providers.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set replaces the value stored under key
func (m *MemoryAdapter) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Delete removes the value stored under key
func (m *MemoryAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Exists checks if a key holds a value
func (m *MemoryAdapter) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok, nil
}
