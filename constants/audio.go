package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain, 0.0-1.0
	AudioMasterVolume = 0.6
)

// Whoosh Sound Timing (knife move)
const (
	WhooshSoundDuration = 400 * time.Millisecond
	WhooshSoundAttack   = 200 * time.Millisecond
	WhooshSoundRelease  = 180 * time.Millisecond
)

// Snap Sound Timing (slice line and split)
const (
	SnapSoundDuration = 90 * time.Millisecond
	SnapSoundAttack   = 2 * time.Millisecond
	SnapSoundRelease  = 60 * time.Millisecond
)

// Pop Sound Timing (confetti)
const (
	PopSoundCount    = 4
	PopSoundDuration = 45 * time.Millisecond
	PopSoundGap      = 35 * time.Millisecond
	PopSoundAttack   = 2 * time.Millisecond
	PopSoundRelease  = 30 * time.Millisecond
)

// Chime Sound Timing (sparkles)
const (
	ChimeSoundDuration      = 700 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeFundamentalRelease = 650 * time.Millisecond
	ChimeOvertoneRelease    = 250 * time.Millisecond
)

// Fanfare Sound Timing (message)
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareLastDuration = 420 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareNoteRelease  = 60 * time.Millisecond
	FanfareLastRelease  = 300 * time.Millisecond
)
