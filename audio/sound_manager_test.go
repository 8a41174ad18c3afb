package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// newTestSoundManager swaps the device hooks; open blocks until release is closed
func newTestSoundManager(openErr error, release <-chan struct{}) (*SoundManager, <-chan struct{}) {
	sm := NewSoundManager(nil)
	entered := make(chan struct{})
	sm.openDevice = func(rate beep.SampleRate, bufferSize int) error {
		close(entered)
		if release != nil {
			<-release
		}
		return openErr
	}
	sm.startDevice = func(s ...beep.Streamer) {}
	sm.closeDevice = func() {}
	return sm, entered
}

func TestPlayDoesNotWaitForSlowDevice(t *testing.T) {
	release := make(chan struct{})
	sm, entered := newTestSoundManager(nil, release)

	initDone := make(chan error, 1)
	go func() { initDone <- sm.Initialize() }()
	<-entered

	played := make(chan error, 1)
	go func() { played <- sm.TryPlay(SoundSnap) }()

	select {
	case err := <-played:
		if !errors.Is(err, ErrNotInitialized) {
			t.Errorf("TryPlay() during open = %v, want ErrNotInitialized", err)
		}
	case <-time.After(time.Second):
		t.Fatal("TryPlay() blocked while the device was opening")
	}

	if err := sm.Initialize(); !errors.Is(err, ErrInitInProgress) {
		t.Errorf("concurrent Initialize() = %v, want ErrInitInProgress", err)
	}

	// Cleanup during the open must not block either
	cleaned := make(chan struct{})
	go func() { sm.Cleanup(); close(cleaned) }()
	select {
	case <-cleaned:
	case <-time.After(time.Second):
		t.Fatal("Cleanup() blocked while the device was opening")
	}

	close(release)
	if err := <-initDone; err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if !sm.IsReady() || !sm.IsEnabled() {
		t.Error("manager not ready after the device opened")
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Initialize() when ready = %v, want nil", err)
	}
}

func TestTryPlayReasons(t *testing.T) {
	sm, _ := newTestSoundManager(nil, nil)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}

	if err := sm.TryPlay(SoundChime); err != nil {
		t.Errorf("TryPlay() = %v, want nil", err)
	}
	if err := sm.TryPlay(SoundType(99)); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("TryPlay(unknown) = %v, want ErrUnknownSound", err)
	}

	sm.ToggleMute()
	if err := sm.TryPlay(SoundChime); !errors.Is(err, ErrMuted) {
		t.Errorf("TryPlay() muted = %v, want ErrMuted", err)
	}
	if sm.Play(SoundChime) {
		t.Error("Play() succeeded while muted")
	}

	sm.Cleanup()
	if sm.IsReady() {
		t.Error("still ready after Cleanup")
	}
	if err := sm.TryPlay(SoundChime); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("TryPlay() after Cleanup = %v, want ErrNotInitialized", err)
	}
}

func TestInitializeFailureLeavesManagerUnready(t *testing.T) {
	sm, _ := newTestSoundManager(errors.New("no device"), nil)

	if err := sm.Initialize(); err == nil {
		t.Fatal("Initialize() = nil, want device error")
	}
	if sm.IsReady() {
		t.Error("ready after failed open")
	}
	// A later retry is allowed
	sm.openDevice = func(beep.SampleRate, int) error { return nil }
	if err := sm.Initialize(); err != nil {
		t.Errorf("retry Initialize() = %v", err)
	}
}
