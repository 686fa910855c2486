package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem[T any] struct {
	value     T
	expiresAt time.Time
}

// Memory is a mutex-guarded map with per-entry expiry
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[string]memoryItem[T]
	now   func() time.Time
}

// NewMemory creates an empty in-memory store
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		items: make(map[string]memoryItem[T]),
		now:   time.Now,
	}
}

// Get returns the value for key unless it is missing or expired
func (m *Memory[T]) Get(_ context.Context, key string) (T, bool) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if !item.expiresAt.IsZero() && !m.now().Before(item.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return zero, false
	}
	return item.value, true
}

// Set stores value under key
func (m *Memory[T]) Set(_ context.Context, key string, value T, ttl time.Duration) {
	item := memoryItem[T]{value: value}
	if ttl > 0 {
		item.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
}

// Delete removes key
func (m *Memory[T]) Delete(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
