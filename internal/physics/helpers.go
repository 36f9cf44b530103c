package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func finite3(v rl.Vector3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// mustDelta panics on a time step that would run the simulation backwards or
// poison it with NaN.
func mustDelta(dt float32) {
	if !finite(dt) {
		panic(fmt.Errorf("%w: %v", ErrNonFiniteDelta, dt))
	}
	if dt < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeDelta, dt))
	}
}

func mustSphere(s *Sphere) {
	if s.Radius < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeRadius, s.Radius))
	}
	if !(s.Mass > 0) {
		panic(fmt.Errorf("%w: %v", ErrNonPositiveMass, s.Mass))
	}
}

func mustBox(b *Body) {
	if b.HalfExtents.X < 0 || b.HalfExtents.Y < 0 || b.HalfExtents.Z < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeExtent, b.HalfExtents))
	}
}
