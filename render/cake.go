package render

import (
	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/scene"
)

// BackgroundRenderer paints the whole screen with the stage color
type BackgroundRenderer struct{}

func (r *BackgroundRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	canvas.Fill(0, 0, ctx.ScreenWidth, ctx.ScreenHeight, ' ', style(RgbBackground))
}

// CakeRenderer draws the plate, the cake (whole or as drifting halves) and the slice line
type CakeRenderer struct{}

func (r *CakeRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	cake := sc.CakeBounds()

	// Plate stays put, one cell wider than the fully split halves
	plateY := cake.Y + cake.Height
	margin := constants.CakeSplitGapPx + constants.CellWidthPx
	px0, px1 := ctx.CellSpan(cake.X-margin, cake.X+cake.Width+margin)
	_, py := ctx.Cell(core.Point{X: cake.X, Y: plateY})
	canvas.Fill(px0, py, px1, py+1, '▀', style(RgbCakePlate))

	if sc.WholeVisible() {
		drawCakeBlock(ctx, canvas, cake)
	} else {
		left, right := sc.CakeHalves(ctx.Now)
		drawCakeBlock(ctx, canvas, left)
		drawCakeBlock(ctx, canvas, right)
	}

	if sc.LineVisible && sc.WholeVisible() {
		x, y0 := ctx.Cell(core.Point{X: cake.Center().X, Y: cake.Y})
		rows := int(cake.Height / constants.CellHeightPx)
		st := style(RgbSliceLine).Background(RgbCakeSponge.Color())
		for y := y0; y < y0+rows; y++ {
			canvas.SetCell(x, y, '┃', st)
		}
	}
}

// drawCakeBlock draws one cake region: icing on top, a cream layer through the middle
func drawCakeBlock(ctx RenderContext, canvas *Canvas, rect core.Rect) {
	x0, x1 := ctx.CellSpan(rect.X, rect.X+rect.Width)
	_, y0 := ctx.Cell(core.Point{X: rect.X, Y: rect.Y})
	rows := int(rect.Height / constants.CellHeightPx)

	for i := 0; i < rows; i++ {
		y := y0 + i
		switch {
		case i == 0:
			canvas.Fill(x0, y, x1, y+1, '█', style(RgbCakeIcing))
		case i == rows/2:
			canvas.Fill(x0, y, x1, y+1, '▒', style(RgbCakeIcing).Background(RgbCakeSponge.Color()))
		default:
			canvas.Fill(x0, y, x1, y+1, '█', style(RgbCakeSponge))
		}
	}
}

// CandleRenderer draws the candles and their flames, following the halves after the split
type CandleRenderer struct{}

func (r *CandleRenderer) Render(ctx RenderContext, sc *scene.Scene, canvas *Canvas) {
	cake := sc.CakeBounds()
	centerX := cake.Center().X

	var leftShift, rightShift float64
	if sc.CakeSplit {
		left, right := sc.CakeHalves(ctx.Now)
		leftShift = left.X - cake.X
		rightShift = right.X - (cake.X + cake.Width/2)
	}

	for i := 0; i < constants.CandleCount; i++ {
		cx := cake.X + float64(i+1)*cake.Width/float64(constants.CandleCount+1)
		if cx < centerX {
			cx += leftShift
		} else {
			cx += rightShift
		}

		x, y := ctx.Cell(core.Point{X: cx, Y: cake.Y - constants.CandleHeightPx})
		canvas.SetCell(x, y, '┃', style(RgbCandle))

		if i >= len(sc.Flames) {
			continue
		}
		opacity := sc.Flames[i].OpacityAt(ctx.Now)
		if opacity < 0.05 {
			continue
		}
		canvas.SetCell(x, y-1, '♦', style(Blend(RgbBackground, RgbFlame, opacity)))
	}
}
