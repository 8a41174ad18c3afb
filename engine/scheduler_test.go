package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s, clock := NewTestScheduler()

	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(time.Second)
	if n := s.Update(); n != 3 {
		t.Fatalf("Update() fired %d, want 3", n)
	}

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSchedulerTiesKeepInsertionOrder(t *testing.T) {
	s, clock := NewTestScheduler()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.After(50*time.Millisecond, func() { order = append(order, i) })
	}

	clock.Advance(50 * time.Millisecond)
	s.Update()

	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSchedulerDoesNotFireEarly(t *testing.T) {
	s, clock := NewTestScheduler()

	fired := false
	s.After(300*time.Millisecond, func() { fired = true })

	clock.Advance(299 * time.Millisecond)
	s.Update()
	if fired {
		t.Fatal("timer fired 1ms before due")
	}

	clock.Advance(1 * time.Millisecond)
	s.Update()
	if !fired {
		t.Fatal("timer did not fire at due time")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s, clock := NewTestScheduler()

	fired := false
	id := s.After(10*time.Millisecond, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel() of pending timer returned false")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() returned true")
	}

	clock.Advance(time.Second)
	s.Update()
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerCallbackSchedulesDueTimer(t *testing.T) {
	s, clock := NewTestScheduler()

	var order []string
	s.After(10*time.Millisecond, func() {
		order = append(order, "outer")
		s.After(0, func() { order = append(order, "inner") })
		s.After(time.Second, func() { order = append(order, "late") })
	})

	clock.Advance(10 * time.Millisecond)
	if n := s.Update(); n != 2 {
		t.Errorf("Update() fired %d, want 2", n)
	}
	if !reflect.DeepEqual(order, []string{"outer", "inner"}) {
		t.Errorf("order = %v", order)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}

	due, ok := s.NextDue()
	if !ok || !due.Equal(TestEpoch.Add(1010*time.Millisecond)) {
		t.Errorf("NextDue() = %v, %v", due, ok)
	}
}

func TestSchedulerCallbackCancelsSibling(t *testing.T) {
	s, clock := NewTestScheduler()

	fired := false
	var sibling TimerID
	s.After(5*time.Millisecond, func() { s.Cancel(sibling) })
	sibling = s.After(5*time.Millisecond, func() { fired = true })

	clock.Advance(5 * time.Millisecond)
	s.Update()

	if fired {
		t.Error("sibling cancelled from a callback still fired")
	}
	if s.Fired() != 1 {
		t.Errorf("Fired() = %d, want 1", s.Fired())
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	s, _ := NewTestScheduler()

	fired := false
	s.After(-time.Second, func() { fired = true })
	s.Update()

	if !fired {
		t.Error("negative delay should fire on the next update")
	}
}

func TestAdvanceToSteps(t *testing.T) {
	s, clock := NewTestScheduler()

	var at time.Duration
	s.After(1500*time.Millisecond, func() { at = clock.Now().Sub(TestEpoch) })

	AdvanceTo(s, clock, 2*time.Second, 10*time.Millisecond)

	if at != 1500*time.Millisecond {
		t.Errorf("callback observed %v, want 1.5s", at)
	}
	if got := clock.Now().Sub(TestEpoch); got != 2*time.Second {
		t.Errorf("clock at %v, want 2s", got)
	}
}
