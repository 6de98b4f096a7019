// Command lanerunner-term plays the lane runner in a text terminal.
package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"lanerunner/internal/audio"
	"lanerunner/internal/config"
	"lanerunner/internal/game"
	"lanerunner/internal/terminal"
)

func main() {
	log.SetPrefix("lanerunner: ")

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sess := game.NewSession(game.DefaultConfig(), settings.Seed)

	// The screen owns the terminal while running; run events are replayed
	// to stderr once it is released.
	var runLog bytes.Buffer
	game.LogEvents(sess.Bus(), log.New(&runLog, log.Prefix(), log.LstdFlags))

	if !settings.Mute {
		snd, err := audio.Init()
		if err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			snd.Attach(sess.Bus())
			defer snd.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := terminal.New(screen, sess).Run(ctx)
	stop()
	screen.Fini()

	os.Stderr.Write(runLog.Bytes())
	log.Printf("seed %d", settings.Seed)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatalf("%v", runErr)
	}
}
