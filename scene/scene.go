// Package scene holds the explicit state of every visual element the cutting
// sequence controls. It replaces ad-hoc element lookups: the sequencer mutates a
// Scene, the renderer reads it.
package scene

import (
	"time"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/particle"
)

// Flags are the independent visual states set during a run.
// Each flag only goes false -> true while a run plays; Reset clears them
type Flags struct {
	KnifeVisible   bool
	KnifeMoving    bool
	LineVisible    bool
	CakeSplit      bool
	FlamesLit      bool
	MessageVisible bool
}

// Trigger is the control starting the sequence
type Trigger struct {
	Enabled bool
	Label   string
}

// Flame is one candle flame
type Flame struct {
	Visible   bool
	Opacity   float64   // Target opacity, eased toward from 1 starting at FadeStart
	FadeStart time.Time // Zero when not fading
}

// OpacityAt returns the rendered opacity at now, easing over FlameFadeDuration
func (f Flame) OpacityAt(now time.Time) float64 {
	if !f.Visible {
		return 0
	}
	if f.FadeStart.IsZero() {
		return f.Opacity
	}
	t := float64(now.Sub(f.FadeStart)) / float64(constants.FlameFadeDuration)
	return core.Lerp(1, f.Opacity, t)
}

// Scene is the complete set of visual elements the sequence controls
type Scene struct {
	Flags

	Trigger Trigger
	Message string

	Stage core.Rect // Whole drawing area, logical pixels
	Cake  core.Rect // Whole cake bounds, reference for the sparkle ring

	Flames   []Flame
	Confetti *particle.Container
	Sparkles *particle.Container

	// Transition start times, read by the renderer for eased motion
	KnifeMovedAt time.Time
	SplitAt      time.Time
	MessageAt    time.Time
}

// New builds the scene in its initial state: cake whole, flames unlit, trigger enabled
func New(message string) *Scene {
	if message == "" {
		message = constants.DefaultMessage
	}

	stage := core.Rect{Width: constants.StageWidth, Height: constants.StageHeight}
	s := &Scene{
		Message: message,
		Stage:   stage,
		Cake: core.Rect{
			X:      constants.CakeLeft,
			Y:      constants.CakeTop,
			Width:  constants.CakeWidth,
			Height: constants.CakeHeight,
		},
		Flames:   make([]Flame, constants.CandleCount),
		Confetti: particle.NewContainer(particle.KindConfetti, stage),
		Sparkles: particle.NewContainer(particle.KindSparkle, stage),
	}
	s.Trigger = Trigger{Enabled: true, Label: constants.TriggerLabelIdle}
	for i := range s.Flames {
		s.Flames[i].Opacity = 1
	}
	return s
}

// CakeBounds returns the whole cake geometry
func (s *Scene) CakeBounds() core.Rect {
	return s.Cake
}

// InitFlames marks every flame visible, called once at scene load
func (s *Scene) InitFlames() {
	for i := range s.Flames {
		s.Flames[i].Visible = true
	}
	s.FlamesLit = true
}

// DisableTrigger locks the control and relabels it while a run plays
func (s *Scene) DisableTrigger(label string) {
	s.Trigger.Enabled = false
	s.Trigger.Label = label
}

// ShowKnife reveals the knife above the cake
func (s *Scene) ShowKnife() {
	s.KnifeVisible = true
}

// MoveKnife starts the knife's travel across the cake
func (s *Scene) MoveKnife(now time.Time) {
	s.KnifeMoving = true
	s.KnifeMovedAt = now
}

// ShowSliceLine reveals the cut line
func (s *Scene) ShowSliceLine() {
	s.LineVisible = true
}

// Split hides the whole cake, separates the halves and starts the flame fade.
// Flames stay lit (FlamesLit keeps its value); only their opacity eases to zero
func (s *Scene) Split(now time.Time) {
	s.CakeSplit = true
	s.SplitAt = now

	for i := range s.Flames {
		s.Flames[i].Opacity = 0
		s.Flames[i].FadeStart = now
	}
}

// ShowMessage starts the glowing message
func (s *Scene) ShowMessage(now time.Time) {
	s.MessageVisible = true
	s.MessageAt = now
}

// WholeVisible reports whether the uncut cake is drawn
func (s *Scene) WholeVisible() bool {
	return !s.CakeSplit
}

// CakeHalves returns the left and right half bounds at now, drifting apart after the split
func (s *Scene) CakeHalves(now time.Time) (left, right core.Rect) {
	half := s.Cake
	half.Width = s.Cake.Width / 2

	left = half
	right = half.Offset(half.Width, 0)

	if !s.CakeSplit {
		return left, right
	}

	t := float64(now.Sub(s.SplitAt)) / float64(constants.CakeSplitDuration)
	gap := core.Lerp(0, constants.CakeSplitGapPx, t)
	return left.Offset(-gap, 0), right.Offset(gap, 0)
}

// Reset restores the initial visual state: cake whole, knife/line/message hidden,
// particles cleared, flames lit and the trigger enabled again
func (s *Scene) Reset() {
	s.Flags = Flags{}
	s.KnifeMovedAt = time.Time{}
	s.SplitAt = time.Time{}
	s.MessageAt = time.Time{}

	if s.Confetti != nil {
		s.Confetti.Clear()
	}
	if s.Sparkles != nil {
		s.Sparkles.Clear()
	}

	for i := range s.Flames {
		s.Flames[i] = Flame{Visible: true, Opacity: 1}
	}
	s.FlamesLit = true

	s.Trigger = Trigger{Enabled: true, Label: constants.TriggerLabelIdle}
}
