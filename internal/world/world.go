package world

import (
	"fmt"

	"ballpit/internal/physics"
	"ballpit/internal/scene"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	WalkSpeed    = 6.0 // units per second
	JumpSpeed    = 6.0
	CollectRange = 2.0 // player centre to golden ball centre
)

// World drives a physics world the way a player would: walking, jumping and
// picking up the golden ball between fixed steps.
type World struct {
	Physics *physics.World
	Golden  int // index into Physics.Spheres, -1 once collected
	Stars   int
	Ticks   int

	logger *log.Logger
}

// New builds the scene and wraps it. The scene must contain a player.
func New(f *scene.File, cfg physics.Config) (*World, error) {
	if f.Player == nil {
		return nil, fmt.Errorf("world: scene has no player")
	}
	pw, err := f.Build(cfg)
	if err != nil {
		return nil, err
	}
	return &World{Physics: pw, Golden: f.Golden()}, nil
}

// SetLogger attaches l to the world and its physics.
func (w *World) SetLogger(l *log.Logger) {
	w.logger = l
	if l != nil {
		w.Physics.SetLogger(l.WithPrefix("physics"))
	} else {
		w.Physics.SetLogger(nil)
	}
}

func (w *World) Player() *physics.Body {
	return w.Physics.Player
}

// Update advances the simulation by one fixed step.
func (w *World) Update(dt float32) physics.SolveStats {
	stats := w.Physics.Step(dt)
	w.Ticks++
	return stats
}

// Collect picks up the golden ball if the player is close enough. The ball
// keeps its slot in the collection with radius zero.
func (w *World) Collect() bool {
	if w.Golden < 0 || w.Golden >= len(w.Physics.Spheres) {
		return false
	}

	ball := &w.Physics.Spheres[w.Golden]
	if rl.Vector3Distance(w.Player().Position, ball.Position) >= CollectRange {
		return false
	}

	ball.Remove()
	if w.logger != nil {
		w.logger.Info("found the golden ball", "index", w.Golden, "tick", w.Ticks)
	}
	w.Golden = -1
	w.Stars++
	return true
}

// Snapshot returns the current state as a scene file.
func (w *World) Snapshot() *scene.File {
	return scene.FromWorld(w.Physics, w.Golden)
}
