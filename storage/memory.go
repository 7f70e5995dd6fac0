package storage

import "sync"

// MemoryMedium is safe for concurrent use, API handlers and the catalog
// refresh loop share one instance.
type MemoryMedium struct {
	mu sync.RWMutex
	Db map[string]string
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{Db: map[string]string{}}
}

func (m *MemoryMedium) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, found := m.Db[key]
	return value, found
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Db[key] = value
	return nil
}

func (m *MemoryMedium) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Db, key)
	return nil
}

func (m *MemoryMedium) Close() error {
	return nil
}
