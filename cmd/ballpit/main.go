// Headless ball pit simulation runner
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ballpit/internal/config"
	"ballpit/internal/scene"
	"ballpit/internal/world"

	"github.com/charmbracelet/log"
)

const (
	restSpeed    = 0.1 // a sphere slower than this counts as settled
	supportRange = 0.5
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "config file (.yaml, .yml or .json), defaults to $"+config.PathEnv)
	scenePath := flag.String("scene", "", "scene file; the default ball pit is generated when empty")
	ticks := flag.Int("ticks", 0, "number of fixed steps, overrides the config duration")
	seed := flag.Int64("seed", 0, "ball pit seed, overrides the config seed")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	broadPhase := flag.String("broadphase", "", "all-pairs or grid")
	savePath := flag.String("save", "", "write the final state to this scene file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["seed"] {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *broadPhase != "" {
		cfg.Physics.BroadPhase = *broadPhase
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid settings", "err", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("bad log level", "level", cfg.LogLevel, "err", err)
	}
	logger.SetLevel(level)

	f, err := loadScene(cfg)
	if err != nil {
		logger.Fatal("load scene", "err", err)
	}

	w, err := world.New(f, cfg.Physics)
	if err != nil {
		logger.Fatal("build world", "err", err)
	}
	w.SetLogger(logger)

	n := cfg.Ticks()
	if *ticks > 0 {
		n = *ticks
	}
	logger.Info("running", "ticks", n, "dt", cfg.Dt(), "spheres", len(w.Physics.Spheres), "broadphase", cfg.Physics.BroadPhase)

	start := time.Now()
	var (
		iterations int
		residual   float32
	)
	for i := 0; i < n; i++ {
		stats := w.Update(cfg.Dt())
		iterations += stats.Iterations
		if stats.MaxPenetration > residual {
			residual = stats.MaxPenetration
		}
	}
	elapsed := time.Since(start)

	mean := 0.0
	if n > 0 {
		mean = float64(iterations) / float64(n)
	}
	p := w.Player().Position
	fmt.Printf("ticks:           %d (%v)\n", n, elapsed.Round(time.Millisecond))
	fmt.Printf("mean iterations: %.2f\n", mean)
	fmt.Printf("max residual:    %.6f\n", residual)
	fmt.Printf("player:          (%.3f, %.3f, %.3f) grounded=%v\n", p.X, p.Y, p.Z, w.Player().Grounded)
	if h, ok := w.Support(supportRange); ok {
		fmt.Printf("standing on:     %s %d (%.3f below)\n", h.Kind, h.Index, h.Distance)
	}
	fmt.Printf("resting spheres: %d/%d\n", w.RestingSpheres(restSpeed), len(w.Physics.Spheres))
	fmt.Printf("golden ball:     %d, stars %d\n", w.Golden, w.Stars)

	if *savePath != "" {
		if err := scene.Save(*savePath, w.Snapshot()); err != nil {
			logger.Fatal("save scene", "err", err)
		}
		logger.Info("saved", "path", *savePath)
	}
}

func loadScene(cfg config.Config) (*scene.File, error) {
	if cfg.Scene == "" {
		return scene.DefaultBallPit(cfg.Seed), nil
	}
	f, err := scene.Load(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.Scene, err)
	}
	return f, nil
}
