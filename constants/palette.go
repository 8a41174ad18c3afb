package constants

// ConfettiPalette is the pastel set confetti colors are drawn from, as 0xRRGGBB
var ConfettiPalette = [...]uint32{
	0xff8fab, // soft pink
	0xffb3c6, // rose
	0xffd3b6, // peach
	0xffe082, // soft yellow
	0xc5e1a5, // pastel green
	0xb39ddb, // lavender
	0xf48fb1, // bright pink
}

// Scene Colors (0xRRGGBB)
const (
	ColorBackground = 0x1b1626
	ColorCakeSponge = 0xf6d7a7
	ColorCakeIcing  = 0xffb3c6
	ColorCakePlate  = 0xd9d9e3
	ColorCandle     = 0x9fd3ff
	ColorFlame      = 0xffc857
	ColorKnifeBlade = 0xe8e8f0
	ColorKnifeGrip  = 0x8d5a3b
	ColorSliceLine  = 0xfff3b0
	ColorSparkle    = 0xfff8d6
	ColorMessage    = 0xff8fab
	ColorMessageHot = 0xfff0f5
	ColorButton     = 0xff8fab
	ColorButtonOff  = 0x6b6477
	ColorButtonText = 0x1b1626
)
