// Package cache provides the transport-level response cache. The engine
// itself is pure and cheap; caching only spares the export and archive work
// for repeated identical requests.
package cache

import "sync"

// Cache stores rendered responses keyed by request hash.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Memory is an in-process Cache for tests and single-node runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
