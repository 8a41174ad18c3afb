package engine

import "time"

// TestEpoch is the fixed start time used by virtual-clock tests
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestScheduler creates a scheduler on a mock clock starting at TestEpoch
func NewTestScheduler() (*Scheduler, *MockTimeProvider) {
	clock := NewMockTimeProvider(TestEpoch)
	return NewScheduler(clock), clock
}

// AdvanceTo moves the mock clock forward to offset past its start in increments of step,
// updating the scheduler after each one so callbacks fire within step of their due time
func AdvanceTo(s *Scheduler, clock *MockTimeProvider, offset, step time.Duration) {
	target := clock.Start().Add(offset)
	for clock.Now().Before(target) {
		next := clock.Now().Add(step)
		if next.After(target) {
			next = target
		}
		clock.SetTime(next)
		s.Update()
	}
	s.Update()
}
