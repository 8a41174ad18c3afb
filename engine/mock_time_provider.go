package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a virtual clock for tests. It only moves when told to and
// remembers where it started, so tests can assert on offsets from the start
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

// NewMockTimeProvider creates a virtual clock standing at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Start returns the time the clock was created at
func (m *MockTimeProvider) Start() time.Time {
	return m.start
}

// Elapsed returns how far the clock moved from its start
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}

// SetTime jumps the clock, backwards jumps included
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
