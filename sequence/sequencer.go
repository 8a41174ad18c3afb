// Package sequence plays the cutting timeline: one trigger call schedules every
// entry at its fixed offset and the scheduler fires them in order.
package sequence

import (
	"errors"
	"log"
	"time"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/engine"
	"github.com/lixenwraith/cake-cutter/particle"
	"github.com/lixenwraith/cake-cutter/scene"
)

// Sentinel errors
var (
	ErrAlreadyRunning  = errors.New("sequence already running")
	ErrTriggerDisabled = errors.New("trigger disabled")
)

// Listener observes steps after their action ran. Listeners must not mutate the scene
type Listener interface {
	OnStep(step Step, offset time.Duration)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(step Step, offset time.Duration)

func (f ListenerFunc) OnStep(step Step, offset time.Duration) { f(step, offset) }

// Option configures a Sequencer
type Option func(*Sequencer)

// WithTimeline replaces DefaultTimeline
func WithTimeline(timeline []Entry) Option {
	return func(s *Sequencer) { s.timeline = timeline }
}

// WithListener registers a step observer
func WithListener(l Listener) Option {
	return func(s *Sequencer) { s.listeners = append(s.listeners, l) }
}

// WithLogger routes sequence logging, defaults to the standard logger
func WithLogger(l *log.Logger) Option {
	return func(s *Sequencer) { s.logger = l }
}

// Sequencer owns one playback of the timeline against a scene
type Sequencer struct {
	scene *scene.Scene
	sched *engine.Scheduler
	gen   *particle.Generator

	timeline  []Entry
	listeners []Listener
	logger    *log.Logger

	running bool
	done    bool
	t0      time.Time
	fired   int
	pending []engine.TimerID
}

// New creates a sequencer; the timeline is validated up front
func New(sc *scene.Scene, sched *engine.Scheduler, gen *particle.Generator, opts ...Option) (*Sequencer, error) {
	s := &Sequencer{
		scene:    sc,
		sched:    sched,
		gen:      gen,
		timeline: DefaultTimeline,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := Validate(s.timeline); err != nil {
		return nil, err
	}

	s.pending = make([]engine.TimerID, 0, len(s.timeline))
	return s, nil
}

// Scene returns the scene this sequencer mutates
func (s *Sequencer) Scene() *scene.Scene {
	return s.scene
}

// InitFlames lights the candles, called once at scene load
func (s *Sequencer) InitFlames() {
	s.scene.InitFlames()
}

// Run starts playback: disables the trigger and commits every timeline entry at its
// offset from now. Fails while a run is playing or after one finished without Reset
func (s *Sequencer) Run() error {
	if s.running {
		return ErrAlreadyRunning
	}
	if !s.scene.Trigger.Enabled {
		return ErrTriggerDisabled
	}

	s.running = true
	s.done = false
	s.fired = 0
	s.t0 = s.sched.Now()
	s.scene.DisableTrigger(constants.TriggerLabelCutting)

	for i := range s.timeline {
		entry := s.timeline[i]
		id := s.sched.At(s.t0.Add(entry.Offset), func() { s.fire(entry) })
		s.pending = append(s.pending, id)
	}

	s.logger.Printf("sequence: started, %d steps over %v", len(s.timeline), Duration(s.timeline))

	if len(s.timeline) == 0 {
		s.finish()
	}
	return nil
}

// fire runs one entry on the scheduler goroutine
func (s *Sequencer) fire(entry Entry) {
	now := s.sched.Now()
	entry.Action(s.scene, s.gen, now)
	s.fired++

	s.logger.Printf("sequence: %s at +%v", entry.Step, now.Sub(s.t0))

	for _, l := range s.listeners {
		l.OnStep(entry.Step, entry.Offset)
	}

	if s.fired == len(s.timeline) {
		s.finish()
	}
}

func (s *Sequencer) finish() {
	s.running = false
	s.done = true
	s.pending = s.pending[:0]
	s.logger.Printf("sequence: finished")
}

// Reset cancels entries not yet fired, restores the initial scene and re-enables the trigger
func (s *Sequencer) Reset() {
	cancelled := 0
	for _, id := range s.pending {
		if s.sched.Cancel(id) {
			cancelled++
		}
	}
	s.pending = s.pending[:0]

	s.scene.Reset()
	s.running = false
	s.done = false
	s.fired = 0

	s.logger.Printf("sequence: reset, %d pending steps cancelled", cancelled)
}

// Running reports whether entries are still pending
func (s *Sequencer) Running() bool {
	return s.running
}

// Done reports whether the last run played every entry
func (s *Sequencer) Done() bool {
	return s.done
}

// Fired returns how many entries of the current run have executed
func (s *Sequencer) Fired() int {
	return s.fired
}

// Elapsed returns time since the trigger, zero when no run started
func (s *Sequencer) Elapsed() time.Duration {
	if s.t0.IsZero() || (!s.running && !s.done) {
		return 0
	}
	return s.sched.Now().Sub(s.t0)
}
