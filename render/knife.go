package render

import (
	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/scene"
)

// knifeGripRows is the grip length in cells above the blade
const knifeGripRows = 2

// KnifeRenderer draws the knife above the cake center, sliding down once moving
type KnifeRenderer struct{}

func (r *KnifeRenderer) IsVisible(sc *scene.Scene) bool {
	return sc.KnifeVisible
}

// KnifeTip returns the tip position in logical pixels at the frame time
func KnifeTip(ctx RenderContext, sc *scene.Scene) core.Point {
	tip := core.Point{X: sc.CakeBounds().Center().X, Y: constants.KnifeRestTopPx}
	if sc.KnifeMoving && !sc.KnifeMovedAt.IsZero() {
		t := float64(ctx.Now.Sub(sc.KnifeMovedAt)) / float64(constants.KnifeTravelDuration)
		tip.Y = core.Lerp(constants.KnifeRestTopPx, constants.KnifeCutTopPx, t)
	}
	return tip
}

func (r *KnifeRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	tip := KnifeTip(ctx, sc)
	x, tipY := ctx.Cell(tip)
	_, topY := ctx.Cell(core.Point{X: tip.X, Y: tip.Y - constants.KnifeLengthPx})

	for y := topY; y < tipY; y++ {
		canvas.SetCell(x, y, '█', style(RgbKnifeBlade))
	}
	canvas.SetCell(x, tipY, '▼', style(RgbKnifeBlade))

	for y := topY - knifeGripRows; y < topY; y++ {
		canvas.SetCell(x, y, '█', style(RgbKnifeGrip))
	}
}
