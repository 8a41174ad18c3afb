package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/cake-cutter/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides linearly from one pitch to another
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a sine gliding from fromFreq to toFreq over duration
func NewSweep(fromFreq, toFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     fromFreq,
		to:       toFreq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is mapped to a silent effect
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// sineTone is a beep sine generator cut to duration. Frequencies above Nyquist are
// rejected by the generator, the oscillator aliases instead
func sineTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}

// CreateWhooshSound generates a rising filtered-noise sweep for the knife travel
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.WhooshSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	glide := NewSweep(180, 520, constants.WhooshSoundDuration, rate)
	glideShaped := NewEnvelope(glide, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.35),
		newVolume(glideShaped, 0.4),
	)
	return newVolume(mixed, effectVolume(cfg, SoundWhoosh))
}

// CreateSnapSound generates a short percussive click for the cut
func CreateSnapSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(900, 140, constants.SnapSoundDuration, rate)
	shaped := NewEnvelope(body, constants.SnapSoundDuration, constants.SnapSoundAttack, constants.SnapSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundSnap))
}

// CreatePopSound generates a quick run of rising pops for the confetti burst
func CreatePopSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, constants.PopSoundCount*2)
	for i := 0; i < constants.PopSoundCount; i++ {
		freq := 520.0 + 140.0*float64(i)
		pop := NewSweep(freq*1.6, freq, constants.PopSoundDuration, rate)
		parts = append(parts,
			NewEnvelope(pop, constants.PopSoundDuration, constants.PopSoundAttack, constants.PopSoundRelease, rate),
			beep.Silence(rate.N(constants.PopSoundGap)),
		)
	}

	return newVolume(beep.Seq(parts...), effectVolume(cfg, SoundPop))
}

// CreateChimeSound generates a bell-like chime for the sparkle ring
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := sineTone(1318.51, constants.ChimeSoundDuration, rate)
	fundShaped := NewEnvelope(fund, constants.ChimeSoundDuration, constants.ChimeSoundAttack, constants.ChimeFundamentalRelease, rate)

	// Harmonic (octave up)
	over := sineTone(2637.02, constants.ChimeSoundDuration, rate)
	overShaped := NewEnvelope(over, constants.ChimeSoundDuration, constants.ChimeSoundAttack, constants.ChimeOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundChime))
}

// fanfareNotes is the opening of the birthday tune (G4 G4 A4 G4 C5 B4)
var fanfareNotes = []float64{392.00, 392.00, 440.00, 392.00, 523.25, 493.88}

// CreateFanfareSound plays the short birthday phrase when the message appears
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, freq := range fanfareNotes {
		dur, rel := constants.FanfareNoteDuration, constants.FanfareNoteRelease
		if i == len(fanfareNotes)-1 {
			dur, rel = constants.FanfareLastDuration, constants.FanfareLastRelease
		}
		note := NewOscillator(freq, dur, WaveSquare, rate)
		parts = append(parts, NewEnvelope(note, dur, constants.FanfareAttack, rel, rate))
	}

	return newVolume(beep.Seq(parts...), effectVolume(cfg, SoundFanfare)*0.5)
}

// GetSoundEffect returns the sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundSnap:
		return CreateSnapSound(cfg)
	case SoundPop:
		return CreatePopSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundFanfare:
		return CreateFanfareSound(cfg)
	default:
		return nil
	}
}
