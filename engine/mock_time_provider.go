package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-driven clock for rounds under test
// Hazard spawns, the round-over dwell and pause spans only move when Advance is called,
// so frame-by-frame scenarios stay deterministic regardless of host speed
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64 // Nanoseconds since start
}

// NewMockTimeProvider creates a clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(m.Elapsed())
}

// Advance moves the clock by d; safe for concurrent use
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// Elapsed reports the total advanced since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}
