package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/Garsondee/parasite-swarm/internal/applog"
	"github.com/Garsondee/parasite-swarm/internal/game"
	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(applog.Main("parasite", os.Stderr, run))
}

func run() error {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", "parasite.json", "simulation config file (defaults if missing)")
	flag.BoolVar(&debug, "debug", false, "write debug logs to logs/parasite.log")
	flag.Parse()

	logger, logFile, err := applog.Setup(debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := sim.LoadConfig(configPath)
	if err != nil {
		return err
	}
	s, err := sim.New(cfg, sim.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	g := game.New(s, logger)
	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(g.Size())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
