package render

import (
	"math"
	"time"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now time.Time

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Stage offset from the terminal origin, non-zero when the terminal is larger than the stage
	StageXOffset int
	StageYOffset int
}

// StageCols and StageRows are the stage size in cells
var (
	StageCols = int(constants.StageWidth / constants.CellWidthPx)
	StageRows = int(constants.StageHeight / constants.CellHeightPx)
)

// NewRenderContext centers the stage in a width x height terminal.
// The last row is kept for the help line
func NewRenderContext(now time.Time, width, height int) RenderContext {
	ctx := RenderContext{
		Now:          now,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
	if width > StageCols {
		ctx.StageXOffset = (width - StageCols) / 2
	}
	if avail := height - 1; avail > StageRows {
		ctx.StageYOffset = (avail - StageRows) / 2
	}
	return ctx
}

// Cell maps a stage point in logical pixels to terminal coordinates
func (ctx RenderContext) Cell(p core.Point) (x, y int) {
	x = ctx.StageXOffset + int(math.Floor(p.X/constants.CellWidthPx))
	y = ctx.StageYOffset + int(math.Floor(p.Y/constants.CellHeightPx))
	return x, y
}

// CellSpan maps a horizontal pixel range to a half-open cell column range
func (ctx RenderContext) CellSpan(x0, x1 float64) (from, to int) {
	from = ctx.StageXOffset + int(math.Floor(x0/constants.CellWidthPx))
	to = ctx.StageXOffset + int(math.Ceil(x1/constants.CellWidthPx))
	return from, to
}

// InStage reports whether terminal cell (x, y) lies inside the stage area
func (ctx RenderContext) InStage(x, y int) bool {
	return x >= ctx.StageXOffset && x < ctx.StageXOffset+StageCols &&
		y >= ctx.StageYOffset && y < ctx.StageYOffset+StageRows
}
