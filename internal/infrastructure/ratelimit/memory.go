// Package ratelimit provides a fixed-window request counter. The
// in-memory implementation suits a single process; multi-process
// deployments should substitute one backed by a shared store.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// Memory counts requests per identifier over a fixed window.
type Memory struct {
	mu      sync.Mutex
	limit   int
	size    time.Duration
	windows map[string]*window
	now     func() time.Time
}

// NewMemory creates a limiter allowing limit requests per size window.
func NewMemory(limit int, size time.Duration) *Memory {
	return &Memory{
		limit:   limit,
		size:    size,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow reports whether a request from identifier may proceed. When the
// limit is exhausted it returns the time until the window resets.
func (m *Memory) Allow(identifier string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[identifier]
	if !ok || now.After(w.resetAt) {
		m.windows[identifier] = &window{count: 1, resetAt: now.Add(m.size)}
		return true, 0
	}

	if w.count >= m.limit {
		return false, w.resetAt.Sub(now)
	}

	w.count++
	return true, 0
}

// Cleanup removes expired windows.
func (m *Memory) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for identifier, w := range m.windows {
		if now.After(w.resetAt) {
			delete(m.windows, identifier)
		}
	}
}

// Start runs Cleanup every interval until ctx is cancelled.
func (m *Memory) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Cleanup()
		}
	}
}
