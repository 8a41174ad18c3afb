// Package particle generates the confetti and sparkle batches of the cutting sequence.
//
// A batch is the full set of particles created by one Generate call. Each particle
// carries its own delay and duration and removes itself from its container once both
// have elapsed. A new batch always replaces the previous one.
package particle

import (
	"time"

	"github.com/lixenwraith/cake-cutter/core"
)

// Kind selects the particle generator
type Kind uint8

const (
	KindConfetti Kind = iota
	KindSparkle
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindConfetti:
		return "confetti"
	case KindSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// Shape is the confetti piece outline
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeRound
)

// Particle is one ephemeral visual element with an independent lifetime
type Particle struct {
	ID   uint64
	Kind Kind

	// Pos is the start position in stage pixels
	Pos core.Point

	// Confetti only
	LeftPercent float64 // Horizontal start as % of container width, [0, 100)
	Color       uint32  // 0xRRGGBB from the confetti palette
	Shape       Shape

	// Sparkle only
	Angle  float64 // Radians, evenly spaced around the ring
	Radius float64 // Pixels from the reference center

	Delay     time.Duration // Animation delay, >= 0
	Duration  time.Duration // Animation duration, > 0
	CreatedAt time.Time
}

// Lifetime is the total time the particle stays in its container
func (p *Particle) Lifetime() time.Duration {
	return p.Delay + p.Duration
}

// ExpiresAt is when the particle removes itself
func (p *Particle) ExpiresAt() time.Time {
	return p.CreatedAt.Add(p.Lifetime())
}

// Progress returns the animation progress in [0, 1] at now.
// Returns false while the particle is still inside its delay
func (p *Particle) Progress(now time.Time) (float64, bool) {
	elapsed := now.Sub(p.CreatedAt) - p.Delay
	if elapsed < 0 {
		return 0, false
	}
	if p.Duration <= 0 || elapsed >= p.Duration {
		return 1, true
	}
	return float64(elapsed) / float64(p.Duration), true
}
