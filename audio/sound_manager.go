package audio

import (
	"fmt"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cake-cutter/constants"
)

// SoundManager owns the speaker and a mixer all cues are added to.
// Opening the device never blocks Play: cues are dropped until the device is ready
type SoundManager struct {
	config  *AudioConfig
	mixer   *beep.Mixer
	opening atomic.Bool
	ready   atomic.Bool
	muted   atomic.Bool

	// Device hooks, speaker.Init/Play/Close outside tests
	openDevice  func(rate beep.SampleRate, bufferSize int) error
	startDevice func(s ...beep.Streamer)
	closeDevice func()
}

// NewSoundManager creates a new sound manager, nil config selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config:      cfg,
		mixer:       &beep.Mixer{},
		openDevice:  speaker.Init,
		startDevice: speaker.Play,
		closeDevice: speaker.Close,
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer. It may block on the device and
// is meant to run off the frame loop; a concurrent call returns ErrInitInProgress
func (sm *SoundManager) Initialize() error {
	if sm.ready.Load() {
		return nil
	}
	if !sm.opening.CompareAndSwap(false, true) {
		return ErrInitInProgress
	}
	defer sm.opening.Store(false)

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.openDevice(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.startDevice(sm.mixer)
	sm.ready.Store(true)
	return nil
}

// Cleanup stops all sounds and closes the device
func (sm *SoundManager) Cleanup() {
	if !sm.ready.CompareAndSwap(true, false) {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.closeDevice()
}

// TryPlay queues a sound or reports why it was dropped
func (sm *SoundManager) TryPlay(st SoundType) error {
	if !sm.ready.Load() {
		return ErrNotInitialized
	}
	if sm.muted.Load() {
		return ErrMuted
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return fmt.Errorf("%w: %v", ErrUnknownSound, st)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Play queues a sound, returns false when not ready, muted or unknown
func (sm *SoundManager) Play(st SoundType) bool {
	return sm.TryPlay(st) == nil
}

// ToggleMute toggles mute state, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsReady reports whether the device is open
func (sm *SoundManager) IsReady() bool {
	return sm.ready.Load()
}

// IsEnabled returns true if initialized and unmuted
func (sm *SoundManager) IsEnabled() bool {
	return sm.ready.Load() && !sm.muted.Load()
}
