package constants

// Stage geometry in logical pixels, mapped onto the terminal grid by the renderer
const (
	StageWidth  = 640.0
	StageHeight = 368.0

	// CellWidthPx/CellHeightPx give the logical size of one terminal cell
	CellWidthPx  = 8.0
	CellHeightPx = 16.0

	// Cake bounds (reference element for the sparkle ring)
	CakeLeft   = 240.0
	CakeTop    = 208.0
	CakeWidth  = 160.0
	CakeHeight = 96.0

	// CandleCount is the number of candles (and flames) on the cake
	CandleCount = 5

	// CakeSplitGapPx is how far each half drifts from the center line once split
	CakeSplitGapPx = 24.0

	// CandleHeightPx is the candle body height above the cake top, flames sit on top of it
	CandleHeightPx = 16.0

	// KnifeRestTopPx is where the knife tip appears, KnifeCutTopPx where its travel ends
	KnifeRestTopPx = 112.0
	KnifeCutTopPx  = 288.0
	KnifeLengthPx  = 80.0

	// MessageTopPx and ButtonTopPx place the text rows
	MessageTopPx = 48.0
	ButtonTopPx  = 336.0
)

// Trigger labels and message
const (
	TriggerLabelIdle    = "Cut the Cake"
	TriggerLabelCutting = "Cutting..."
	DefaultMessage      = "Happy Birthday!"
	HelpText            = "space/enter: cut   r: replay   m: sound   q: quit"
)
