package particle

import (
	"math"
	"time"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/engine"
)

// Rand is the uniform source in [0, 1) all particle parameters are drawn from.
// *math/rand.Rand satisfies it
type Rand interface {
	Float64() float64
}

// Generator creates particle batches and schedules their self-removal
type Generator struct {
	sched      *engine.Scheduler
	rng        Rand
	containers [kindCount]*Container

	// reference returns the bounds of the element the sparkle ring is centered on
	reference func() core.Rect

	nextID uint64
}

// NewGenerator wires the generator to its containers. A nil container makes
// Generate for that kind a no-op
func NewGenerator(sched *engine.Scheduler, rng Rand, confetti, sparkles *Container, reference func() core.Rect) *Generator {
	g := &Generator{
		sched:     sched,
		rng:       rng,
		reference: reference,
	}
	g.containers[KindConfetti] = confetti
	g.containers[KindSparkle] = sparkles
	return g
}

// Container returns the container managed for kind, nil if absent.
// A nil generator manages no containers
func (g *Generator) Container(kind Kind) *Container {
	if g == nil || kind >= kindCount {
		return nil
	}
	return g.containers[kind]
}

// Generate replaces the kind's batch with count fresh particles and returns how many
// were created. Negative counts create nothing
func (g *Generator) Generate(kind Kind, count int) int {
	c := g.Container(kind)
	if c == nil {
		return 0
	}

	c.Clear()
	if count <= 0 {
		return 0
	}

	now := g.sched.Now()

	switch kind {
	case KindConfetti:
		for i := 0; i < count; i++ {
			g.spawn(c, g.confetti(c, now))
		}
	case KindSparkle:
		// Snapshot of the reference geometry, not tracked after this call
		var center core.Point
		if g.reference != nil {
			center = g.reference().Center()
		}
		for i := 0; i < count; i++ {
			g.spawn(c, g.sparkle(center, i, count, now))
		}
	}

	return count
}

// spawn attaches p and schedules its removal at the end of its lifetime
func (g *Generator) spawn(c *Container, p Particle) {
	c.Add(p)
	id := p.ID
	g.sched.After(p.Lifetime(), func() {
		c.Remove(id)
	})
}

func (g *Generator) confetti(c *Container, now time.Time) Particle {
	palette := constants.ConfettiPalette
	colorIdx := int(g.rng.Float64() * float64(len(palette)))
	if colorIdx >= len(palette) {
		colorIdx = len(palette) - 1
	}

	left := g.rng.Float64() * constants.ConfettiLeftMaxPercent
	delay := g.uniform(0, constants.ConfettiDelayMax)
	duration := g.uniform(constants.ConfettiDurationMin, constants.ConfettiDurationSpan)

	shape := ShapeRect
	if g.rng.Float64() < constants.ConfettiRoundChance {
		shape = ShapeRound
	}

	bounds := c.Bounds()
	g.nextID++
	return Particle{
		ID:          g.nextID,
		Kind:        KindConfetti,
		Pos:         core.Point{X: bounds.X + bounds.Width*left/100, Y: bounds.Y + constants.ConfettiTop},
		LeftPercent: left,
		Color:       palette[colorIdx],
		Shape:       shape,
		Delay:       delay,
		Duration:    duration,
		CreatedAt:   now,
	}
}

func (g *Generator) sparkle(center core.Point, i, count int, now time.Time) Particle {
	angle := 2 * math.Pi * float64(i) / float64(count)
	radius := constants.SparkleRadiusMin + g.rng.Float64()*constants.SparkleRadiusSpan
	delay := g.uniform(0, constants.SparkleDelayMax)
	duration := g.uniform(constants.SparkleDurationMin, constants.SparkleDurationSpan)

	g.nextID++
	return Particle{
		ID:        g.nextID,
		Kind:      KindSparkle,
		Pos:       center.Polar(angle, radius),
		Color:     constants.ColorSparkle,
		Angle:     angle,
		Radius:    radius,
		Delay:     delay,
		Duration:  duration,
		CreatedAt: now,
	}
}

// uniform draws a duration in [lo, lo+span)
func (g *Generator) uniform(lo, span time.Duration) time.Duration {
	d := time.Duration(g.rng.Float64() * float64(span))
	// Float rounding near 1.0 can land on the exclusive bound
	if d >= span && span > 0 {
		d = span - 1
	}
	return lo + d
}
