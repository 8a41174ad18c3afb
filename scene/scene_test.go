package scene

import (
	"testing"
	"time"

	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/particle"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewSceneInitialState(t *testing.T) {
	s := New("")

	if s.Flags != (Flags{}) {
		t.Errorf("initial flags = %+v, want all false", s.Flags)
	}
	if !s.Trigger.Enabled || s.Trigger.Label != constants.TriggerLabelIdle {
		t.Errorf("trigger = %+v, want enabled idle", s.Trigger)
	}
	if s.Message != constants.DefaultMessage {
		t.Errorf("message = %q, want default", s.Message)
	}
	if len(s.Flames) != constants.CandleCount {
		t.Errorf("flames = %d, want %d", len(s.Flames), constants.CandleCount)
	}
	for i, f := range s.Flames {
		if f.Visible {
			t.Errorf("flame %d visible before InitFlames", i)
		}
	}
	if !s.WholeVisible() {
		t.Error("whole cake hidden on a fresh scene")
	}
}

func TestInitFlames(t *testing.T) {
	s := New("hi")
	s.InitFlames()

	if !s.FlamesLit {
		t.Error("FlamesLit false after InitFlames")
	}
	for i, f := range s.Flames {
		if !f.Visible || f.OpacityAt(epoch) != 1 {
			t.Errorf("flame %d = %+v, want visible at full opacity", i, f)
		}
	}
}

func TestSplitFadesFlames(t *testing.T) {
	s := New("")
	s.InitFlames()
	s.Split(epoch)

	if !s.CakeSplit || !s.FlamesLit {
		t.Fatalf("flags after split = %+v", s.Flags)
	}
	if s.WholeVisible() {
		t.Error("whole cake still visible after split")
	}

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 1},
		{250 * time.Millisecond, 0.5},
		{constants.FlameFadeDuration, 0},
		{2 * time.Second, 0},
	}
	for _, tt := range tests {
		if got := s.Flames[0].OpacityAt(epoch.Add(tt.at)); got != tt.want {
			t.Errorf("opacity at %v = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestCakeHalvesDrift(t *testing.T) {
	s := New("")

	left, right := s.CakeHalves(epoch)
	if left.X != s.Cake.X || right.X != s.Cake.X+s.Cake.Width/2 {
		t.Errorf("unsplit halves = %+v %+v", left, right)
	}

	s.Split(epoch)
	left, right = s.CakeHalves(epoch.Add(constants.CakeSplitDuration))
	if left.X != s.Cake.X-constants.CakeSplitGapPx {
		t.Errorf("left half x = %v, want %v", left.X, s.Cake.X-constants.CakeSplitGapPx)
	}
	if right.X != s.Cake.X+s.Cake.Width/2+constants.CakeSplitGapPx {
		t.Errorf("right half x = %v", right.X)
	}
}

func TestTransitionsSetFlags(t *testing.T) {
	s := New("")

	s.DisableTrigger(constants.TriggerLabelCutting)
	s.ShowKnife()
	s.MoveKnife(epoch)
	s.ShowSliceLine()
	s.ShowMessage(epoch)

	want := Flags{KnifeVisible: true, KnifeMoving: true, LineVisible: true, MessageVisible: true}
	if s.Flags != want {
		t.Errorf("flags = %+v, want %+v", s.Flags, want)
	}
	if s.Trigger.Enabled || s.Trigger.Label != constants.TriggerLabelCutting {
		t.Errorf("trigger = %+v, want disabled cutting", s.Trigger)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := New("")
	s.InitFlames()
	s.DisableTrigger(constants.TriggerLabelCutting)
	s.ShowKnife()
	s.MoveKnife(epoch)
	s.ShowSliceLine()
	s.Split(epoch)
	s.ShowMessage(epoch)
	s.Confetti.Add(particle.Particle{ID: 1, Kind: particle.KindConfetti})
	s.Sparkles.Add(particle.Particle{ID: 2, Kind: particle.KindSparkle})

	s.Reset()

	if s.Flags != (Flags{FlamesLit: true}) {
		t.Errorf("flags after reset = %+v", s.Flags)
	}
	if s.Confetti.Len() != 0 || s.Sparkles.Len() != 0 {
		t.Error("particle containers not cleared")
	}
	if !s.Trigger.Enabled || s.Trigger.Label != constants.TriggerLabelIdle {
		t.Errorf("trigger = %+v, want enabled idle", s.Trigger)
	}
	for i, f := range s.Flames {
		if f.OpacityAt(epoch.Add(time.Hour)) != 1 {
			t.Errorf("flame %d not restored: %+v", i, f)
		}
	}
	if !s.WholeVisible() {
		t.Error("whole cake hidden after reset")
	}
}
