package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cake-cutter/audio"
	"github.com/lixenwraith/cake-cutter/constants"
	"github.com/lixenwraith/cake-cutter/core"
	"github.com/lixenwraith/cake-cutter/engine"
	"github.com/lixenwraith/cake-cutter/render"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/cake-cutter.log")
	muteFlag     = flag.Bool("mute", false, "Disable sound")
	seedFlag     = flag.Int64("seed", 0, "Particle random seed, 0 seeds from the clock")
	autoplayFlag = flag.Bool("autoplay", false, "Start cutting right away")
	messageFlag  = flag.String("message", constants.DefaultMessage, "Message shown after the cut")
)

func main() {
	// Panic Recovery: restore the terminal even if the main goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cake-cutter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashRestore(screen.Fini)

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground.Color()))
	screen.HideCursor()

	var sound *audio.SoundManager
	if !*muteFlag {
		sound = audio.NewSoundManager(audio.DefaultAudioConfig())
		// Opening the device can stall; Play drops cues until it is ready
		core.Go(func() {
			if err := sound.Initialize(); err != nil {
				log.Printf("audio: %v (continuing without sound)", err)
				return
			}
			log.Printf("audio: ready")
		})
		defer sound.Cleanup()
	}

	a, err := newApp(screen, engine.NewMonotonicTimeProvider(), appConfig{
		Message: *messageFlag,
		Seed:    *seedFlag,
		Sound:   sound,
	})
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	if *autoplayFlag {
		a.cut()
	}

	g, ctx := errgroup.WithContext(context.Background())
	events := make(chan tcell.Event, constants.InputQueueSize)

	g.Go(core.Recover(func() error { return a.pumpEvents(ctx, events) }))
	g.Go(core.Recover(func() error { return a.loop(ctx, events) }))

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
