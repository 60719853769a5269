package redis

import (
	"context"
	"padel-service/internal/app/contracts"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryRepository is a process local RedisRepository used by tests and
// single instance tooling.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ contracts.RedisRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryRepository) get(key string) (memoryEntry, bool) {
	entry, ok := m.entries[key]
	if !ok {
		return entry, false
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		return entry, false
	}
	return entry, true
}

func (m *MemoryRepository) expiry(exp time.Duration) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return m.now().Add(exp)
}

func (m *MemoryRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryRepository) Set(_ context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: string(encoded), expiresAt: m.expiry(exp)}
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.get(key)
	if !ok {
		return "", nil
	}
	return entry.value, nil
}

func (m *MemoryRepository) TrySetNX(_ context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.get(key); ok {
		return false, nil
	}
	m.entries[key] = memoryEntry{value: string(encoded), expiresAt: m.expiry(exp)}
	return true, nil
}

func (m *MemoryRepository) IncrementWithTTL(_ context.Context, key string, ttl time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.get(key)
	count := 0
	if ok {
		count, _ = strconv.Atoi(entry.value)
	} else {
		entry.expiresAt = m.expiry(ttl)
	}
	count++
	entry.value = strconv.Itoa(count)
	m.entries[key] = entry
	return count, nil
}

func (m *MemoryRepository) Expire(_ context.Context, key string, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.get(key)
	if !ok {
		return false, nil
	}
	entry.expiresAt = m.expiry(exp)
	m.entries[key] = entry
	return true, nil
}

// Keys lists the live keys.
func (m *MemoryRepository) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for key := range m.entries {
		if _, ok := m.get(key); ok {
			keys = append(keys, key)
		}
	}
	return keys
}
