package cache

import (
	"context"
	"time"

	"maya-connect/internal/pkg/clock"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is a size-bounded LRU. maxTTL bounds every entry; shorter per-entry
// TTLs are enforced on read against the injected clock.
type Memory struct {
	lru    *expirable.LRU[string, memoryEntry]
	maxTTL time.Duration
	clock  clock.Clock
}

func NewMemory(size int, maxTTL time.Duration, clk clock.Clock) *Memory {
	if size <= 0 {
		size = 1024
	}
	return newMemory(size, maxTTL, clk)
}

// NewUnbounded keeps every entry until its TTL runs out; nothing is evicted
// to make room.
func NewUnbounded(maxTTL time.Duration, clk clock.Clock) *Memory {
	return newMemory(0, maxTTL, clk)
}

func newMemory(size int, maxTTL time.Duration, clk clock.Clock) *Memory {
	if maxTTL <= 0 {
		maxTTL = 5 * time.Minute
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Memory{
		lru:    expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		maxTTL: maxTTL,
		clock:  clk,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !m.clock.Now().Before(e.expiresAt) {
		m.lru.Remove(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 || ttl > m.maxTTL {
		ttl = m.maxTTL
	}
	m.lru.Add(key, memoryEntry{value: value, expiresAt: m.clock.Now().Add(ttl)})
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

func (m *Memory) Len() int {
	return m.lru.Len()
}
