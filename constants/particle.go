package constants

import "time"

// Batch Sizes
const (
	// ConfettiCount is the number of confetti pieces released at the confetti step
	ConfettiCount = 60

	// SparkleCount is the number of sparkles placed on the ring at the sparkle step
	SparkleCount = 40
)

// Confetti Parameters
const (
	// ConfettiTop is the fixed start offset above the stage (px), pieces fall from here
	ConfettiTop = -20.0

	// ConfettiLeftMaxPercent is the exclusive upper bound of the horizontal start (% of stage width)
	ConfettiLeftMaxPercent = 100.0

	// ConfettiRoundChance is the probability of a rounded piece instead of a rectangle
	ConfettiRoundChance = 0.5

	ConfettiDelayMax    = 500 * time.Millisecond
	ConfettiDurationMin = 2 * time.Second
	// ConfettiDurationSpan is added to ConfettiDurationMin, exclusive upper bound 3.5s
	ConfettiDurationSpan = 1500 * time.Millisecond
)

// Sparkle Parameters
const (
	// SparkleRadiusMin/Span bound the ring radius (px) around the cake center: [80, 180)
	SparkleRadiusMin  = 80.0
	SparkleRadiusSpan = 100.0

	SparkleDelayMax    = 300 * time.Millisecond
	SparkleDurationMin = 1 * time.Second
	// SparkleDurationSpan is added to SparkleDurationMin, exclusive upper bound 1.7s
	SparkleDurationSpan = 700 * time.Millisecond
)
