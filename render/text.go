package render

import (
	"math"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/scene"
)

// MessageRenderer draws the greeting with a slow brightness pulse
type MessageRenderer struct{}

func (r *MessageRenderer) IsVisible(sc *scene.Scene) bool {
	return sc.MessageVisible
}

// GlowLevel returns the pulse level in [0, 1] for the message, starting dim
func GlowLevel(ctx RenderContext, sc *scene.Scene) float64 {
	phase := float64(ctx.Now.Sub(sc.MessageAt)) / float64(constants.MessageGlowPeriod)
	return 0.5 - 0.5*math.Cos(2*math.Pi*phase)
}

func (r *MessageRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	x, y := ctx.Cell(core.Point{X: constants.StageWidth / 2, Y: constants.MessageTopPx})
	fg := Blend(RgbMessage, RgbMessageHot, GlowLevel(ctx, sc))
	canvas.CenteredText(x, y, sc.Message, style(fg).Bold(true))
}

// ControlsRenderer draws the trigger button and the key help line
type ControlsRenderer struct{}

func (r *ControlsRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	x, y := ctx.Cell(core.Point{X: constants.StageWidth / 2, Y: constants.ButtonTopPx})

	bg := RgbButton
	if !sc.Trigger.Enabled {
		bg = RgbButtonOff
	}
	st := style(RgbButtonText).Background(bg.Color()).Bold(sc.Trigger.Enabled)
	canvas.CenteredText(x, y, "  "+sc.Trigger.Label+"  ", st)

	helpX := ctx.StageXOffset + StageCols/2
	canvas.CenteredText(helpX, ctx.ScreenHeight-1, constants.HelpText, style(RgbButtonOff))
}
