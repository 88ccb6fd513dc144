package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"globe3d/internal/config"
	"globe3d/internal/control"
	"globe3d/internal/globe"
	logpkg "globe3d/internal/logger"
	"globe3d/internal/raster"
	"globe3d/internal/snapshot"
	"globe3d/internal/tui"
)

func init() {
	// glfw calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	var (
		configPath   string
		termMode     bool
		snapshotPath string
		frames       int
		spin         float64
		seed         uint64
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file.")
	flag.BoolVar(&termMode, "term", false, "Render in the terminal instead of a window.")
	flag.StringVar(&snapshotPath, "snapshot", "", "Render headless and write a PNG to this path.")
	flag.IntVar(&frames, "frames", 0, "Snapshot mode: frames to advance before rendering.")
	flag.Float64Var(&spin, "spin", 0, "Snapshot mode: degrees about Y applied per frame.")
	flag.Uint64Var(&seed, "seed", 0, "Random seed for the point sets (0 = config or time based).")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Globe.Seed = seed
	}

	logger, err := logpkg.NewLogger(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, termMode, snapshotPath, frames, spin); err != nil {
		logger.Error("globe3d failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger, termMode bool, snapshotPath string, frames int, spin float64) error {
	seed := cfg.Globe.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g, err := globe.New(cfg.GlobeOptions(), rng)
	if err != nil {
		return fmt.Errorf("create globe: %w", err)
	}
	ctl := control.New(g, cfg.ControlSettings(), logger)

	logger.Info("globe ready",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Uint64("seed", seed),
		zap.String("sampling", cfg.Globe.Sampling),
		zap.Int("land_points", len(g.Land())),
		zap.Int("cloud_points", len(g.Clouds())),
	)

	switch {
	case snapshotPath != "":
		img := snapshot.Render(g, frames, spin, raster.DefaultPalette)
		if err := snapshot.WriteFile(snapshotPath, img); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", snapshotPath), zap.Int("frames", frames))
		return nil

	case termMode:
		return runTerminal(g, ctl, cfg.Window.FPS, logger)

	default:
		for _, line := range globe.HelpLines(g.ZoomLevel())[:4] {
			logger.Info(line)
		}
		return runWindow(g, ctl, cfg.Window.Title, logger)
	}
}

func runTerminal(g *globe.Globe, ctl *control.Controller, fps int, logger *zap.Logger) error {
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

	err = tui.New(screen, g, ctl, raster.DefaultPalette, logger).Run(ctx, fps)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
