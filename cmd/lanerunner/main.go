// Command lanerunner is the windowed lane runner.
package main

import (
	"log"

	"lanerunner/internal/audio"
	"lanerunner/internal/config"
	"lanerunner/internal/desktop"
	"lanerunner/internal/game"
)

func main() {
	log.SetPrefix("lanerunner: ")

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("seed %d", settings.Seed)

	sess := game.NewSession(game.DefaultConfig(), settings.Seed)
	game.LogEvents(sess.Bus(), log.Default())

	var snd *audio.System
	if !settings.Mute {
		if snd, err = audio.Init(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			snd.Attach(sess.Bus())
			defer snd.Close()
		}
	}

	if err := desktop.Run(settings, sess, snd); err != nil {
		log.Fatalf("%v", err)
	}
}
