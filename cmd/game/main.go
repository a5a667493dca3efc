package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/ping-pong/internal/audio"
	"github.com/Garsondee/ping-pong/internal/config"
	"github.com/Garsondee/ping-pong/internal/display"
	"github.com/Garsondee/ping-pong/internal/game"
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
		log.Printf("audio disabled: %v", err)
	} else {
		notifier = player
		defer player.Close()
	}

	rep := game.NewMatchReporter(0, 0)
	sim := game.NewSimulation(
		game.WithSeed(cfg.EffectiveSeed()),
		game.WithNotifier(notifier),
		game.WithReporter(rep),
		game.WithSimLog(game.NewSimLog(cfg.VerboseLog)),
		game.WithThreshold(cfg.Threshold),
	)
	g := display.New(sim, display.Options{
		Reporter: rep,
		ShowFeed: cfg.ShowFeed,
		Scale:    cfg.WindowScale,
	})

	ebiten.SetWindowTitle("Ping Pong Game")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(game.TargetTPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
