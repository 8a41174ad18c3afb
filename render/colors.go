package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cake-cutter/constants"
)

// RGB is a 24-bit color split into channels for blending
type RGB struct {
	R, G, B uint8
}

// Hex splits a 0xRRGGBB value
func Hex(c uint32) RGB {
	return RGB{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// Color converts to a tcell color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend linearly mixes src over dst, alpha 0 keeps dst and 1 gives src
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return RGB{
		R: clamp(float64(dst.R) + (float64(src.R)-float64(dst.R))*alpha),
		G: clamp(float64(dst.G) + (float64(src.G)-float64(dst.G))*alpha),
		B: clamp(float64(dst.B) + (float64(src.B)-float64(dst.B))*alpha),
	}
}

// Scene colors
var (
	RgbBackground = Hex(constants.ColorBackground)
	RgbCakeSponge = Hex(constants.ColorCakeSponge)
	RgbCakeIcing  = Hex(constants.ColorCakeIcing)
	RgbCakePlate  = Hex(constants.ColorCakePlate)
	RgbCandle     = Hex(constants.ColorCandle)
	RgbFlame      = Hex(constants.ColorFlame)
	RgbKnifeBlade = Hex(constants.ColorKnifeBlade)
	RgbKnifeGrip  = Hex(constants.ColorKnifeGrip)
	RgbSliceLine  = Hex(constants.ColorSliceLine)
	RgbSparkle    = Hex(constants.ColorSparkle)
	RgbMessage    = Hex(constants.ColorMessage)
	RgbMessageHot = Hex(constants.ColorMessageHot)
	RgbButton     = Hex(constants.ColorButton)
	RgbButtonOff  = Hex(constants.ColorButtonOff)
	RgbButtonText = Hex(constants.ColorButtonText)
)

// style returns a foreground style over the stage background
func style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color()).Background(RgbBackground.Color())
}
