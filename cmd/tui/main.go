package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Garsondee/parasite-swarm/internal/applog"
	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/Garsondee/parasite-swarm/internal/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(applog.Main("parasite-tui", os.Stderr, run))
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	s.Start(ctx)
	defer s.Close()

	if err := tui.NewApp(screen, s, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
