package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cake-cutter/audio"
	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/engine"
	"github.com/lixenwraith/cake-cutter/particle"
	"github.com/lixenwraith/cake-cutter/render"
	"github.com/lixenwraith/cake-cutter/scene"
	"github.com/lixenwraith/cake-cutter/sequence"
)

// errQuit ends the frame loop and, through the errgroup, the input pump
var errQuit = errors.New("quit")

// appConfig is the resolved command line
type appConfig struct {
	Message string
	Seed    int64
	Sound   *audio.SoundManager // nil when muted
}

// app wires the scene, the scheduler and the renderer on one goroutine
type app struct {
	screen       tcell.Screen
	sched        *engine.Scheduler
	scene        *scene.Scene
	seq          *sequence.Sequencer
	orchestrator *render.RenderOrchestrator
	sound        *audio.SoundManager
}

func newApp(screen tcell.Screen, clock engine.TimeProvider, cfg appConfig) (*app, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("app: particle seed %d", seed)

	sched := engine.NewScheduler(clock)
	sc := scene.New(cfg.Message)
	gen := particle.NewGenerator(sched, rand.New(rand.NewSource(seed)), sc.Confetti, sc.Sparkles, sc.CakeBounds)

	opts := []sequence.Option{sequence.WithLogger(log.Default())}
	if cfg.Sound != nil {
		opts = append(opts, sequence.WithListener(audio.NewCuePlayer(cfg.Sound)))
	}

	seq, err := sequence.New(sc, sched, gen, opts...)
	if err != nil {
		return nil, err
	}
	seq.InitFlames()

	return &app{
		screen:       screen,
		sched:        sched,
		scene:        seq.Scene(),
		seq:          seq,
		orchestrator: render.NewDefaultOrchestrator(screen),
		sound:        cfg.Sound,
	}, nil
}

// cut starts the sequence; a press while running or before replay is ignored
func (a *app) cut() {
	if err := a.seq.Run(); err != nil {
		log.Printf("app: cut ignored: %v", err)
	}
}

// replay cancels any pending steps and restores the whole cake
func (a *app) replay() {
	a.seq.Reset()
	log.Printf("app: scene reset")
}

// handleEvent applies one input event, returns true when the program should quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.orchestrator.Resize(w, h)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	// Some terminals report Ctrl-C as a modified rune
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		a.cut()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			a.cut()
		case 'r', 'R':
			a.replay()
		case 'm', 'M':
			if a.sound != nil {
				on := a.sound.ToggleMute()
				log.Printf("app: sound on=%v", on)
			}
		case 'q', 'Q':
			return true
		}
	}
	return false
}

// frame fires due timers and draws the scene
func (a *app) frame() {
	a.sched.Update()
	a.orchestrator.RenderFrame(a.sched.Now(), a.scene)
}

// pumpEvents forwards screen events until ctx is done; the channel is closed on return
func (a *app) pumpEvents(ctx context.Context, events chan<- tcell.Event) error {
	a.screen.ChannelEvents(events, ctx.Done())
	return nil
}

// loop is the single goroutine touching the scene: input, timers and rendering
func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				return errQuit
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
