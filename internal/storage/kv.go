package storage

import (
	"context"
	"sync"
)

// KV is the persistence boundary: a synchronous string key-value store.
// The whole application state lives under one fixed key as a single blob.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is a map-backed KV used in tests.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
