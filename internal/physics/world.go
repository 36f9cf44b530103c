package physics

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// SolveStats summarizes one call to Solve.
type SolveStats struct {
	Iterations     int     // passes actually run
	Contacts       int     // resolver calls that found a contact, over all passes
	MaxPenetration float32 // deepest correction in the last pass
}

// World owns every body the solver touches. Collections are resolved in
// slice order, and that order is part of the result: corrections are not
// symmetric, so reordering spheres changes the converged state.
type World struct {
	Config Config

	Player    *Body    // dynamic box, may be nil
	Obstacles []Body   // static boxes the player and spheres collide with
	Container []Body   // static walls that only spheres collide with
	Spheres   []Sphere

	logger   *log.Logger
	grid     *grid
	lastMode string
}

func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{Config: cfg, grid: newGrid()}, nil
}

// SetLogger attaches a logger. A nil logger silences the world.
func (w *World) SetLogger(l *log.Logger) {
	w.logger = l
}

func (w *World) SetPlayer(b *Body) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	b.Type = Dynamic
	w.Player = b
	return nil
}

// AddObstacle adds a static box. The body is forced static.
func (w *World) AddObstacle(b Body) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("obstacle %d: %w", len(w.Obstacles), err)
	}
	b.Type = Static
	w.Obstacles = append(w.Obstacles, b)
	return nil
}

// AddContainerWall adds a static wall that bounds spheres only.
func (w *World) AddContainerWall(b Body) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("container wall %d: %w", len(w.Container), err)
	}
	b.Type = Static
	w.Container = append(w.Container, b)
	return nil
}

// AddSphere appends a sphere and returns its index.
func (w *World) AddSphere(s Sphere) (int, error) {
	if err := s.Validate(); err != nil {
		return -1, fmt.Errorf("sphere %d: %w", len(w.Spheres), err)
	}
	w.Spheres = append(w.Spheres, s)
	return len(w.Spheres) - 1, nil
}

// Step integrates the player and every sphere once, then runs the solver.
func (w *World) Step(dt float32) SolveStats {
	if w.Player != nil {
		StepBody(w.Config, w.Player, dt)
	}
	for i := range w.Spheres {
		StepSphere(w.Config, &w.Spheres[i], dt)
	}
	return w.Solve()
}

// Solve runs up to Config.Iterations resolution passes. Each pass visits, in
// order: sphere-sphere pairs, sphere-obstacle pairs, sphere-container pairs,
// sphere-player pairs and player-obstacle pairs. Repeating the passes lets
// corrections propagate through stacks of three or more touching bodies.
//
// With Config.ConvergenceEpsilon > 0 the loop stops after the first pass
// whose deepest correction does not exceed it.
func (w *World) Solve() SolveStats {
	cfg := w.Config
	w.noteMode(cfg.BroadPhase)

	var stats SolveStats
	for it := 0; it < cfg.Iterations; it++ {
		var pass contactTally

		w.resolveSpherePairs(cfg, &pass)

		for i := range w.Spheres {
			for k := range w.Obstacles {
				pass.add(ResolveSphereBox(cfg, &w.Spheres[i], &w.Obstacles[k]))
			}
		}
		for i := range w.Spheres {
			for k := range w.Container {
				pass.add(ResolveSphereBox(cfg, &w.Spheres[i], &w.Container[k]))
			}
		}
		if w.Player != nil {
			for i := range w.Spheres {
				pass.add(ResolveSphereBox(cfg, &w.Spheres[i], w.Player))
			}
			for k := range w.Obstacles {
				pass.add(ResolveBoxBox(w.Player, &w.Obstacles[k]))
			}
		}

		stats.Iterations++
		stats.Contacts += pass.contacts
		stats.MaxPenetration = pass.deepest

		if cfg.ConvergenceEpsilon > 0 && pass.deepest <= cfg.ConvergenceEpsilon {
			if w.logger != nil {
				w.logger.Debug("solver converged", "iterations", stats.Iterations, "deepest", pass.deepest)
			}
			break
		}
	}
	return stats
}

func (w *World) resolveSpherePairs(cfg Config, pass *contactTally) {
	if cfg.BroadPhase == BroadPhaseGrid {
		if w.grid == nil {
			w.grid = newGrid()
		}
		w.grid.rebuild(w.Spheres, cfg.CellSize)
		for _, p := range w.grid.candidatePairs(w.Spheres) {
			pass.add(ResolveSphereSphere(cfg, &w.Spheres[p.I], &w.Spheres[p.J]))
		}
		return
	}

	for i := 0; i < len(w.Spheres); i++ {
		for j := i + 1; j < len(w.Spheres); j++ {
			pass.add(ResolveSphereSphere(cfg, &w.Spheres[i], &w.Spheres[j]))
		}
	}
}

// noteMode logs when the broad phase changes between ticks.
func (w *World) noteMode(mode string) {
	if mode == "" {
		mode = BroadPhaseAllPairs
	}
	if mode == w.lastMode {
		return
	}
	if w.logger != nil {
		w.logger.Info("broad phase", "mode", mode, "spheres", len(w.Spheres))
	}
	w.lastMode = mode
}

type contactTally struct {
	contacts int
	deepest  float32
}

func (t *contactTally) add(depth float32, hit bool) {
	if !hit {
		return
	}
	t.contacts++
	if depth > t.deepest {
		t.deepest = depth
	}
}
