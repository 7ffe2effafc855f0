package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/slayer/internal/bard"
	"github.com/tatianab/slayer/internal/config"
	"github.com/tatianab/slayer/internal/dice"
	"github.com/tatianab/slayer/internal/engine"
	"github.com/tatianab/slayer/internal/logger"
	"github.com/tatianab/slayer/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	closer, err := logger.Init(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	defer closer.Close()

	src, err := dice.New(cfg.Seed)
	if err != nil {
		fmt.Printf("Error seeding dice: %v\n", err)
		os.Exit(1)
	}

	var ep tui.Epitapher
	if cfg.BardEnabled() {
		b, err := bard.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.WithError(err).Warn("bard unavailable, using the static epitaph")
		} else {
			defer b.Close()
			ep = b
		}
	}

	session := engine.NewSession(src)
	if err := tui.Run(session, ep, cfg.PlayerName); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
