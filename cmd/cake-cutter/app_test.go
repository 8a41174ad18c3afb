package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cake-cutter/audio"
	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/engine"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// MockScreen is a minimal mock for tcell.Screen keeping the last frame
type MockScreen struct {
	tcell.Screen
	cells map[[2]int]rune
}

func (m *MockScreen) Size() (int, int) { return 80, 24 }
func (m *MockScreen) Clear()           { m.cells = make(map[[2]int]rune) }
func (m *MockScreen) Show()            {}
func (m *MockScreen) Sync()            {}
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if m.cells == nil {
		m.cells = make(map[[2]int]rune)
	}
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < 80; x++ {
		r, ok := m.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestApp(t *testing.T, cfg appConfig) (*app, *MockScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := &MockScreen{}
	clock := engine.NewMockTimeProvider(engine.TestEpoch)
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	a, err := newApp(screen, clock, cfg)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	return a, screen, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppInitialScene(t *testing.T) {
	a, screen, _ := newTestApp(t, appConfig{Message: "Hi Ada"})

	if !a.scene.FlamesLit {
		t.Error("flames should be lit at load")
	}
	if !a.scene.Trigger.Enabled {
		t.Error("trigger should start enabled")
	}

	a.frame()
	if !strings.Contains(screen.row(21), constants.TriggerLabelIdle) {
		t.Errorf("button row %q missing idle label", screen.row(21))
	}
}

func TestAppCutPlaysSequence(t *testing.T) {
	a, screen, clock := newTestApp(t, appConfig{Message: "Hi Ada"})

	if a.handleKey(key(' ')) {
		t.Fatal("space should not quit")
	}
	if a.scene.Trigger.Enabled || a.scene.Trigger.Label != constants.TriggerLabelCutting {
		t.Errorf("trigger = %+v, want disabled with cutting label", a.scene.Trigger)
	}

	clock.Advance(299 * time.Millisecond)
	a.frame()
	if a.scene.KnifeVisible {
		t.Error("knife visible before 300ms")
	}

	clock.Advance(2 * time.Millisecond)
	a.frame()
	if !a.scene.KnifeVisible {
		t.Error("knife hidden after 300ms")
	}

	clock.Advance(3 * time.Second)
	a.frame()
	if !a.scene.MessageVisible || !a.scene.CakeSplit {
		t.Errorf("flags = %+v, want split and message visible", a.scene.Flags)
	}
	if n := a.scene.Confetti.Len(); n != constants.ConfettiCount {
		t.Errorf("confetti = %d, want %d", n, constants.ConfettiCount)
	}
	if n := a.scene.Sparkles.Len(); n != constants.SparkleCount {
		t.Errorf("sparkles = %d, want %d", n, constants.SparkleCount)
	}
	if !strings.Contains(screen.row(3), "Hi Ada") {
		t.Errorf("message row %q missing text", screen.row(3))
	}

	// Second cut after completion is ignored until replay
	a.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.scene.Trigger.Enabled {
		t.Error("trigger re-enabled without replay")
	}
}

func TestAppCutWhileRunningIgnored(t *testing.T) {
	a, _, clock := newTestApp(t, appConfig{})

	a.handleKey(key(' '))
	clock.Advance(time.Second)
	a.frame()
	fired := a.seq.Fired()

	a.handleKey(key(' '))
	a.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !a.seq.Running() {
		t.Fatal("sequence should still be running")
	}
	if a.seq.Fired() != fired {
		t.Errorf("fired = %d, want %d", a.seq.Fired(), fired)
	}
}

func TestAppReplayCancelsRun(t *testing.T) {
	a, _, clock := newTestApp(t, appConfig{})

	a.handleKey(key(' '))
	clock.Advance(time.Second)
	a.frame()
	if !a.scene.KnifeMoving {
		t.Fatal("knife should be moving at 1s")
	}

	a.handleKey(key('r'))
	if !a.scene.Trigger.Enabled || a.scene.Trigger.Label != constants.TriggerLabelIdle {
		t.Errorf("trigger = %+v, want enabled with idle label", a.scene.Trigger)
	}
	if a.scene.KnifeVisible || a.scene.KnifeMoving {
		t.Error("knife not reset")
	}

	clock.Advance(5 * time.Second)
	a.frame()
	if a.scene.LineVisible || a.scene.CakeSplit || a.scene.MessageVisible {
		t.Errorf("cancelled steps fired after replay: %+v", a.scene.Flags)
	}

	a.handleKey(key(' '))
	if a.scene.Trigger.Enabled {
		t.Error("cut after replay should start a new run")
	}
}

func TestAppQuitKeys(t *testing.T) {
	a, _, _ := newTestApp(t, appConfig{})

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", key('q'), true},
		{"Q", key('Q'), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"other rune", key('x'), false},
		{"replay", key('r'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.handleKey(tt.ev); got != tt.want {
				t.Errorf("handleKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppSoundToggle(t *testing.T) {
	sound := audio.NewSoundManager(audio.DefaultAudioConfig())
	a, _, _ := newTestApp(t, appConfig{Sound: sound})

	if sound.IsMuted() {
		t.Fatal("sound should start unmuted")
	}
	a.handleKey(key('m'))
	if !sound.IsMuted() {
		t.Error("m should mute")
	}
	a.handleKey(key('m'))
	if sound.IsMuted() {
		t.Error("second m should unmute")
	}

	// Muted app has no sound manager, m is a no-op
	b, _, _ := newTestApp(t, appConfig{})
	if b.handleKey(key('m')) {
		t.Error("m should not quit")
	}
}

func TestAppLoop(t *testing.T) {
	t.Run("quit key", func(t *testing.T) {
		a, _, _ := newTestApp(t, appConfig{})
		events := make(chan tcell.Event, 1)
		events <- key('q')

		err := a.loop(context.Background(), events)
		if !errors.Is(err, errQuit) {
			t.Errorf("loop() = %v, want errQuit", err)
		}
	})

	t.Run("closed channel", func(t *testing.T) {
		a, _, _ := newTestApp(t, appConfig{})
		events := make(chan tcell.Event)
		close(events)

		if err := a.loop(context.Background(), events); err != nil {
			t.Errorf("loop() = %v, want nil", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		a, _, _ := newTestApp(t, appConfig{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := a.loop(ctx, make(chan tcell.Event)); err != nil {
			t.Errorf("loop() = %v, want nil", err)
		}
	})
}
