package limiter

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count int64
	start time.Time
}

type MemoryStore struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now, window)

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}
	b.count++

	return b.count, nil
}

// sweep drops buckets whose window has ended, at most once per window.
func (m *MemoryStore) sweep(now time.Time, window time.Duration) {
	if now.Sub(m.lastSweep) <= window {
		return
	}
	for key, b := range m.buckets {
		if now.Sub(b.start) > window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
