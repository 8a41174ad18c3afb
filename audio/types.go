package audio

import (
	"errors"

	"github.com/lixenwraith/cake-cutter/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhoosh  SoundType = iota // Knife sliding across
	SoundSnap                     // Slice line and split
	SoundPop                      // Confetti burst
	SoundChime                    // Sparkle ring
	SoundFanfare                  // Message glow
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundWhoosh:
		return "whoosh"
	case SoundSnap:
		return "snap"
	case SoundPop:
		return "pop"
	case SoundChime:
		return "chime"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}

// AudioConfig holds output and mixing settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: constants.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundWhoosh:  0.5,
			SoundSnap:    0.7,
			SoundPop:     0.6,
			SoundChime:   0.5,
			SoundFanfare: 0.6,
		},
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrInitInProgress = errors.New("audio initialization in progress")
	ErrMuted          = errors.New("audio muted")
	ErrUnknownSound   = errors.New("unknown sound type")
)
