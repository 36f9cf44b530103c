package physics

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Broad-phase modes for sphere-sphere pair generation.
const (
	BroadPhaseAllPairs = "all-pairs"
	BroadPhaseGrid     = "grid"
)

// Config holds every tunable of the simulation. Gravity is passed to the
// integrator through this value; there is no package-level gravity.
type Config struct {
	Gravity            float32 `yaml:"gravity" json:"gravity"`                       // vertical acceleration, negative is down
	TerminalVelocity   float32 `yaml:"terminalVelocity" json:"terminalVelocity"`     // cap on downward speed
	GroundRestitution  float32 `yaml:"groundRestitution" json:"groundRestitution"`   // sphere bounce off the ground plane
	SphereRestitution  float32 `yaml:"sphereRestitution" json:"sphereRestitution"`   // sphere-sphere impulse restitution
	BoxContactDamping  float32 `yaml:"boxContactDamping" json:"boxContactDamping"`   // velocity scale after a sphere-box contact
	Epsilon            float32 `yaml:"epsilon" json:"epsilon"`                       // floor on distances before normalizing
	Iterations         int     `yaml:"iterations" json:"iterations"`                 // solver passes per tick
	ConvergenceEpsilon float32 `yaml:"convergenceEpsilon" json:"convergenceEpsilon"` // 0 disables early exit

	BroadPhase string  `yaml:"broadPhase" json:"broadPhase"`
	CellSize   float32 `yaml:"cellSize" json:"cellSize"`
}

// DefaultConfig returns the tuning the ball pit ships with.
func DefaultConfig() Config {
	return Config{
		Gravity:           -9.81,
		TerminalVelocity:  20.0,
		GroundRestitution: 0.4,
		SphereRestitution: 0.4,
		BoxContactDamping: 0.6,
		Epsilon:           1e-4,
		Iterations:        8,
		BroadPhase:        BroadPhaseAllPairs,
		CellSize:          1.0,
	}
}

// Validate reports the first field that would make the simulation produce
// NaN or run backwards.
func (c Config) Validate() error {
	switch {
	case math32.IsNaN(c.Gravity) || math32.IsInf(c.Gravity, 0):
		return fmt.Errorf("%w: gravity %v", ErrInvalidConfig, c.Gravity)
	case !(c.TerminalVelocity > 0):
		return fmt.Errorf("%w: terminal velocity must be positive, got %v", ErrInvalidConfig, c.TerminalVelocity)
	case c.GroundRestitution < 0 || c.GroundRestitution > 1:
		return fmt.Errorf("%w: ground restitution %v outside [0,1]", ErrInvalidConfig, c.GroundRestitution)
	case c.SphereRestitution < 0 || c.SphereRestitution > 1:
		return fmt.Errorf("%w: sphere restitution %v outside [0,1]", ErrInvalidConfig, c.SphereRestitution)
	case c.BoxContactDamping < 0 || c.BoxContactDamping > 1:
		return fmt.Errorf("%w: box contact damping %v outside [0,1]", ErrInvalidConfig, c.BoxContactDamping)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidConfig, c.Epsilon)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidConfig, c.Iterations)
	case c.ConvergenceEpsilon < 0:
		return fmt.Errorf("%w: convergence epsilon %v is negative", ErrInvalidConfig, c.ConvergenceEpsilon)
	}

	switch c.BroadPhase {
	case BroadPhaseAllPairs, "":
	case BroadPhaseGrid:
		if !(c.CellSize > 0) {
			return fmt.Errorf("%w: grid cell size must be positive, got %v", ErrInvalidConfig, c.CellSize)
		}
	default:
		return fmt.Errorf("%w: unknown broad phase %q", ErrInvalidConfig, c.BroadPhase)
	}
	return nil
}
