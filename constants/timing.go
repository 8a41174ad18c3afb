package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputQueueSize is the buffered capacity of the key event channel
	InputQueueSize = 16
)

// Cutting Sequence Offsets (in milliseconds, each measured from the trigger)
const (
	KnifeShowMs = 300
	KnifeMoveMs = 600
	SliceLineMs = 1500
	CakeSplitMs = 1900
	ConfettiMs  = 2200
	SparklesMs  = 2500
	MessageMs   = 3100
)

// Cutting Sequence Offsets as durations
const (
	KnifeShowOffset = KnifeShowMs * time.Millisecond
	KnifeMoveOffset = KnifeMoveMs * time.Millisecond
	SliceLineOffset = SliceLineMs * time.Millisecond
	CakeSplitOffset = CakeSplitMs * time.Millisecond
	ConfettiOffset  = ConfettiMs * time.Millisecond
	SparklesOffset  = SparklesMs * time.Millisecond
	MessageOffset   = MessageMs * time.Millisecond
)

// Scene Transitions
const (
	// FlameFadeDuration is how long flames take to fade out after the split
	FlameFadeDuration = 500 * time.Millisecond

	// KnifeTravelDuration is how long the knife takes to slide across the cake once moving
	KnifeTravelDuration = 900 * time.Millisecond

	// CakeSplitDuration is how long the halves take to drift apart
	CakeSplitDuration = 600 * time.Millisecond

	// MessageGlowPeriod is the period of the message brightness pulse
	MessageGlowPeriod = 1500 * time.Millisecond
)
