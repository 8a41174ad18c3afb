package sequence

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/particle"
	"github.com/lixenwraith/cake-cutter/scene"
)

// Step names one transition of the cutting sequence
type Step uint8

const (
	StepKnifeShow Step = iota
	StepKnifeMove
	StepSliceLine
	StepCakeSplit
	StepConfetti
	StepSparkles
	StepMessage
)

func (s Step) String() string {
	switch s {
	case StepKnifeShow:
		return "KnifeShow"
	case StepKnifeMove:
		return "KnifeMove"
	case StepSliceLine:
		return "SliceLine"
	case StepCakeSplit:
		return "CakeSplit"
	case StepConfetti:
		return "Confetti"
	case StepSparkles:
		return "Sparkles"
	case StepMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

// Action mutates the scene for one timeline step
type Action func(sc *scene.Scene, gen *particle.Generator, now time.Time)

// Entry is one (offset, transition) pair. Offset is measured from the trigger, not from
// the previous entry
type Entry struct {
	Step   Step
	Offset time.Duration
	Action Action
}

// ErrInvalidTimeline is returned for negative or decreasing offsets
var ErrInvalidTimeline = errors.New("invalid timeline")

// DefaultTimeline is the fixed cutting sequence
var DefaultTimeline = []Entry{
	{
		Step:   StepKnifeShow,
		Offset: constants.KnifeShowOffset,
		Action: func(sc *scene.Scene, _ *particle.Generator, _ time.Time) { sc.ShowKnife() },
	},
	{
		Step:   StepKnifeMove,
		Offset: constants.KnifeMoveOffset,
		Action: func(sc *scene.Scene, _ *particle.Generator, now time.Time) { sc.MoveKnife(now) },
	},
	{
		Step:   StepSliceLine,
		Offset: constants.SliceLineOffset,
		Action: func(sc *scene.Scene, _ *particle.Generator, _ time.Time) { sc.ShowSliceLine() },
	},
	{
		Step:   StepCakeSplit,
		Offset: constants.CakeSplitOffset,
		Action: func(sc *scene.Scene, _ *particle.Generator, now time.Time) { sc.Split(now) },
	},
	{
		Step:   StepConfetti,
		Offset: constants.ConfettiOffset,
		Action: func(_ *scene.Scene, gen *particle.Generator, _ time.Time) {
			gen.Generate(particle.KindConfetti, constants.ConfettiCount)
		},
	},
	{
		Step:   StepSparkles,
		Offset: constants.SparklesOffset,
		Action: func(_ *scene.Scene, gen *particle.Generator, _ time.Time) {
			gen.Generate(particle.KindSparkle, constants.SparkleCount)
		},
	},
	{
		Step:   StepMessage,
		Offset: constants.MessageOffset,
		Action: func(sc *scene.Scene, _ *particle.Generator, now time.Time) { sc.ShowMessage(now) },
	},
}

// Validate checks offsets are non-negative and non-decreasing and every entry has an action
func Validate(timeline []Entry) error {
	var prev time.Duration
	for i, e := range timeline {
		if e.Action == nil {
			return fmt.Errorf("%w: entry %d (%s) has no action", ErrInvalidTimeline, i, e.Step)
		}
		if e.Offset < 0 {
			return fmt.Errorf("%w: entry %d (%s) has negative offset %v", ErrInvalidTimeline, i, e.Step, e.Offset)
		}
		if e.Offset < prev {
			return fmt.Errorf("%w: entry %d (%s) at %v precedes %v", ErrInvalidTimeline, i, e.Step, e.Offset, prev)
		}
		prev = e.Offset
	}
	return nil
}

// Duration returns the offset of the last entry
func Duration(timeline []Entry) time.Duration {
	if len(timeline) == 0 {
		return 0
	}
	return timeline[len(timeline)-1].Offset
}
