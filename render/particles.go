package render

import (
	"math"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/particle"
	"github.com/lixenwraith/cake-cutter/scene"
)

const (
	// confettiSwayPx is the horizontal sway amplitude while falling
	confettiSwayPx = 12.0
	// confettiFadeFrom is the progress after which confetti fades out
	confettiFadeFrom = 0.8
)

// ParticleRenderer draws falling confetti and twinkling sparkles
type ParticleRenderer struct{}

func (r *ParticleRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	for _, c := range []*particle.Container{sc.Confetti, sc.Sparkles} {
		if c == nil {
			continue
		}
		draw := r.sparkle
		if c.Kind() == particle.KindConfetti {
			draw = r.confetti
		}
		for _, p := range c.Particles() {
			draw(ctx, canvas, p)
		}
	}
}

// ConfettiPosition returns where a confetti piece is at progress t: it falls from its
// spawn point to the stage bottom while swaying
func ConfettiPosition(p particle.Particle, t float64) core.Point {
	phase := float64(p.ID%8) * math.Pi / 4
	return core.Point{
		X: p.Pos.X + confettiSwayPx*math.Sin(2*math.Pi*2*t+phase),
		Y: core.Lerp(p.Pos.Y, constants.StageHeight, t),
	}
}

func (r *ParticleRenderer) confetti(ctx RenderContext, canvas *Canvas, p particle.Particle) {
	t, ok := p.Progress(ctx.Now)
	if !ok {
		return
	}

	x, y := ctx.Cell(ConfettiPosition(p, t))
	if !ctx.InStage(x, y) {
		return
	}

	alpha := 1.0
	if t > confettiFadeFrom {
		alpha = (1 - t) / (1 - confettiFadeFrom)
	}

	glyph := '▬'
	if p.Shape == particle.ShapeRound {
		glyph = '●'
	}
	canvas.SetCell(x, y, glyph, style(Blend(RgbBackground, Hex(p.Color), alpha)))
}

// SparkleScale is the twinkle size at progress t, growing then shrinking
func SparkleScale(t float64) float64 {
	return math.Sin(math.Pi * t)
}

func (r *ParticleRenderer) sparkle(ctx RenderContext, canvas *Canvas, p particle.Particle) {
	t, ok := p.Progress(ctx.Now)
	if !ok {
		return
	}
	scale := SparkleScale(t)
	if scale < 0.05 {
		return
	}

	x, y := ctx.Cell(p.Pos)
	if !ctx.InStage(x, y) {
		return
	}

	var glyph rune
	switch {
	case scale < 0.35:
		glyph = '·'
	case scale < 0.7:
		glyph = '+'
	default:
		glyph = '✦'
	}
	canvas.SetCell(x, y, glyph, style(Blend(RgbBackground, Hex(p.Color), scale)))
}
