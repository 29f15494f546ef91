package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCacheRepository - кеш в памяти процесса, когда Redis не настроен.
// Данные не переживают перезапуск.
type MemoryCacheRepository struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{items: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryCacheRepository) alive(key string) (memoryEntry, bool) {
	e, ok := m.items[key]
	if !ok {
		return e, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.items, key)
		return e, false
	}
	return e, true
}

func (m *MemoryCacheRepository) entry(value interface{}, expiration time.Duration) memoryEntry {
	e := memoryEntry{}
	switch v := value.(type) {
	case string:
		e.value = v
	case []byte:
		e.value = string(v)
	default:
		e.value = fmt.Sprint(v)
	}
	if expiration > 0 {
		e.expiresAt = m.now().Add(expiration)
	}
	return e
}

func (m *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.alive(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return e.value, nil
}

func (m *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = m.entry(value, expiration)
	return nil
}

func (m *MemoryCacheRepository) Del(_ context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, key := range keys {
		if _, ok := m.alive(key); ok {
			delete(m.items, key)
			n++
		}
	}
	return n, nil
}

func (m *MemoryCacheRepository) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.alive(key); ok {
		return false, nil
	}
	m.items[key] = m.entry(value, expiration)
	return true, nil
}
