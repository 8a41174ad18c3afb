package render

import (
	"github.com/gdamore/tcell/v2"
)

// Canvas is a clipping writer over a tcell screen
type Canvas struct {
	screen        tcell.Screen
	width, height int
}

// NewCanvas wraps screen with the given visible size
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Size returns the visible size
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetCell writes one rune, cells outside the screen are dropped
func (c *Canvas) SetCell(x, y int, r rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, st)
}

// Text writes s starting at (x, y) and returns the column after the last rune
func (c *Canvas) Text(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		c.SetCell(x, y, r, st)
		x++
	}
	return x
}

// CenteredText writes s centered on column cx
func (c *Canvas) CenteredText(cx, y int, s string, st tcell.Style) {
	c.Text(cx-len([]rune(s))/2, y, s, st)
}

// Fill writes r over the half-open rectangle [x0,x1) x [y0,y1)
func (c *Canvas) Fill(x0, y0, x1, y1 int, r rune, st tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.SetCell(x, y, r, st)
		}
	}
}
