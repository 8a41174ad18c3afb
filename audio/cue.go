package audio

import (
	"time"

	"github.com/lixenwraith/cake-cutter/sequence"
)

// Player is what the cue player needs from the sound backend
type Player interface {
	Play(st SoundType) bool
}

// stepCues maps cutting steps to sounds; steps without an entry are silent
var stepCues = map[sequence.Step]SoundType{
	sequence.StepKnifeMove: SoundWhoosh,
	sequence.StepSliceLine: SoundSnap,
	sequence.StepCakeSplit: SoundSnap,
	sequence.StepConfetti:  SoundPop,
	sequence.StepSparkles:  SoundChime,
	sequence.StepMessage:   SoundFanfare,
}

// CueForStep returns the sound played when step fires
func CueForStep(step sequence.Step) (SoundType, bool) {
	st, ok := stepCues[step]
	return st, ok
}

// CuePlayer is a sequence listener turning steps into sounds
type CuePlayer struct {
	player Player
}

// NewCuePlayer creates a cue player on top of player
func NewCuePlayer(player Player) *CuePlayer {
	return &CuePlayer{player: player}
}

// OnStep plays the cue mapped to step, if any
func (cp *CuePlayer) OnStep(step sequence.Step, _ time.Duration) {
	if cp.player == nil {
		return
	}
	if st, ok := CueForStep(step); ok {
		cp.player.Play(st)
	}
}
