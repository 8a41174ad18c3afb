package engine

import "time"

// TimerID identifies a scheduled callback for cancellation
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Time
	fn  func()
}

// Scheduler is the single timer loop driving all timed scene mutations.
// Callbacks run to completion on the goroutine calling Update, ordered by due time
// and then by scheduling order. Not safe for concurrent use: the owner routes every
// mutation through the goroutine that ticks it
type Scheduler struct {
	clock  TimeProvider
	timers []timer // Sorted by due, ties keep insertion order
	nextID TimerID
	fired  uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock:  clock,
		timers: make([]timer, 0, 128),
	}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After schedules fn to run once d has elapsed. Negative durations are treated as zero
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	return s.At(s.clock.Now().Add(d), fn)
}

// At schedules fn to run once the clock reaches due
func (s *Scheduler) At(due time.Time, fn func()) TimerID {
	s.nextID++
	t := timer{id: s.nextID, due: due, fn: fn}

	// Insertion sort: after every timer due at or before t
	pos := len(s.timers)
	for i := range s.timers {
		if due.Before(s.timers[i].due) {
			pos = i
			break
		}
	}

	s.timers = append(s.timers, timer{})
	copy(s.timers[pos+1:], s.timers[pos:])
	s.timers[pos] = t

	return t.id
}

// Cancel removes a pending timer, returns false if it already fired or never existed
func (s *Scheduler) Cancel(id TimerID) bool {
	for i := range s.timers {
		if s.timers[i].id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of timers not yet fired
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// NextDue returns the due time of the earliest pending timer
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.timers) == 0 {
		return time.Time{}, false
	}
	return s.timers[0].due, true
}

// Fired returns the total count of callbacks executed
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// Update runs every timer due at the current clock reading and returns how many fired.
// Timers scheduled by a callback that are already due run in the same pass
func (s *Scheduler) Update() int {
	now := s.clock.Now()
	n := 0

	for len(s.timers) > 0 && !s.timers[0].due.After(now) {
		t := s.timers[0]
		copy(s.timers, s.timers[1:])
		s.timers[len(s.timers)-1] = timer{}
		s.timers = s.timers[:len(s.timers)-1]

		t.fn()
		s.fired++
		n++
	}

	return n
}
