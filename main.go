package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"kanagawa/internal/catalog"
	"kanagawa/internal/config"
	"kanagawa/internal/engine"
	"kanagawa/internal/logger"
	"kanagawa/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	src := catalog.Embedded()
	if cfg.Catalog.Dir != "" {
		src = catalog.Dir(cfg.Catalog.Dir)
	}

	opts := []engine.Option{engine.WithLogger(log)}
	if cfg.Game.Seed != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(cfg.Game.Seed, cfg.Game.Seed))))
	}
	g, err := engine.NewGame(src, cfg.Game.Engine(), opts...)
	if err != nil {
		log.Fatal("invalid catalog", zap.String("dir", cfg.Catalog.Dir), zap.Error(err))
	}
	log.Info("catalog loaded",
		zap.Int("cards", g.Deck.Len()),
		zap.Int("diploma_groups", len(g.DiplomaGroups)),
	)

	if err := tui.Run(g, log); err != nil {
		log.Error("terminal ui", zap.Error(err))
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
