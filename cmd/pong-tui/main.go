package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/ping-pong/internal/audio"
	"github.com/Garsondee/ping-pong/internal/config"
	"github.com/Garsondee/ping-pong/internal/game"
	"github.com/Garsondee/ping-pong/internal/tui"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()
	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	var notifier game.CueNotifier = game.NopNotifier{}
	player, err := audio.NewPlayer(audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: audio.DefaultConfig().SampleRate,
	})
	if err != nil {
		// Non-fatal, the match plays silently.
		log.Printf("audio disabled: %v", err)
	} else {
		notifier = player
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	sim := game.NewSimulation(
		game.WithSeed(cfg.EffectiveSeed()),
		game.WithNotifier(game.MultiNotifier(notifier, tui.BellOnScore(screen))),
		game.WithSimLog(game.NewSimLog(cfg.VerboseLog)),
		game.WithThreshold(cfg.Threshold),
	)
	tui.NewApp(screen, sim, cfg.TUI.RepeatFrames).Run()

	player.Close()
	screen.Fini()
}
