package cache

import (
	"context"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map"
	"go.uber.org/zap"
)

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// Memory is an in-process cache. A janitor goroutine drops expired entries.
type Memory struct {
	items  cmap.ConcurrentMap[memoryEntry]
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
	logger *zap.SugaredLogger
}

// NewMemory starts the janitor when interval > 0.
func NewMemory(interval time.Duration) *Memory {
	m := &Memory{
		items:  cmap.New[memoryEntry](),
		now:    time.Now,
		stop:   make(chan struct{}),
		logger: zap.S().Named("memory_cache"),
	}

	if interval > 0 {
		m.wg.Add(1)
		go m.janitor(interval)
	}

	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := m.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.body, true, nil
}

func (m *Memory) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	m.items.Set(key, memoryEntry{body: body, expiresAt: m.now().Add(ttl)})
	return nil
}

func (m *Memory) Len() int {
	return m.items.Count()
}

// Purge removes expired entries and returns how many were removed.
func (m *Memory) Purge() int {
	now := m.now()
	removed := 0
	for _, key := range m.items.Keys() {
		if m.items.RemoveCb(key, func(_ string, e memoryEntry, exists bool) bool {
			return exists && !now.Before(e.expiresAt)
		}) {
			removed++
		}
	}
	return removed
}

func (m *Memory) Close() error {
	m.once.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
	return nil
}

func (m *Memory) janitor(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.Purge(); n > 0 {
				m.logger.Debugw("purged expired entries", "count", n)
			}
		case <-m.stop:
			return
		}
	}
}
