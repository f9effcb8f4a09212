package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"chosenoffset.com/hatchling/internal/config"
	"chosenoffset.com/hatchling/internal/effects"
	"chosenoffset.com/hatchling/internal/game"
	"chosenoffset.com/hatchling/internal/logging"
	ebitenrender "chosenoffset.com/hatchling/internal/render/ebiten"
	"chosenoffset.com/hatchling/internal/session"
	"chosenoffset.com/hatchling/internal/sprites"
	"chosenoffset.com/hatchling/internal/transition"
)

func main() {
	configPath := flag.String("config", "hatchling.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", *configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		slog.Error("failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	clock := transition.SystemClock{}
	book := sprites.NewBook(cfg.Layout())
	view := game.NewView(logger)

	sess := session.New(session.Options{
		Rules:    cfg.Rules(),
		Upgrades: cfg.UpgradeTable(),
		Catalog:  book,
		Random:   rand.New(rand.NewSource(seed)),
		Clock:    clock,
		Observer: view,
		Logger:   logger,
	})
	logger.Info("session started", slog.String("session", sess.ID()), slog.Int64("seed", seed))

	g := game.New(game.Options{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Renderer:     renderer,
		Input:        inputMgr,
		Session:      sess,
		View:         view,
		Sprites:      game.LoadSprites(renderer, loader, book, cfg.Animation.SpriteDir, logger),
		Glitch: effects.GlitchSettings{
			Enabled:   cfg.Glitch.Enabled,
			Interval:  cfg.Glitch.Interval,
			Duration:  cfg.Glitch.Duration,
			Intensity: cfg.Glitch.Intensity,
		},
		Clock:  clock,
		Random: rand.New(rand.NewSource(seed + 1)),
		Logger: logger,
	})

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	logger.Info("starting game")
	if err := engine.RunGame(g); err != nil {
		logger.Error("game loop failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("game closed", slog.String("session", sess.ID()))
}
