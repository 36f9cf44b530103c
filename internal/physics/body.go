package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNegativeDelta   = errors.New("physics: negative delta time")
	ErrNonFiniteDelta  = errors.New("physics: non-finite delta time")
	ErrNegativeRadius  = errors.New("physics: negative radius")
	ErrNonPositiveMass = errors.New("physics: mass must be positive")
	ErrNegativeExtent  = errors.New("physics: negative half extent")
	ErrInvalidConfig   = errors.New("physics: invalid config")
)

// BodyType decides whether the solver may move a box.
type BodyType int

const (
	Dynamic BodyType = iota // integrated and pushed by resolvers
	Static                  // never integrated, never moved
)

func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	}
	return fmt.Sprintf("BodyType(%d)", int(t))
}

// Body is an axis-aligned box. HalfExtents are measured from the center, so
// the box spans Position-HalfExtents to Position+HalfExtents.
type Body struct {
	Position    rl.Vector3
	Velocity    rl.Vector3
	HalfExtents rl.Vector3
	Type        BodyType

	// Grounded is set by StepBody when the box rests on the ground plane.
	// Resting on another body does not count.
	Grounded bool
}

func NewDynamicBody(pos, half rl.Vector3) *Body {
	return &Body{Position: pos, HalfExtents: half, Type: Dynamic}
}

func NewStaticBody(pos, half rl.Vector3) *Body {
	return &Body{Position: pos, HalfExtents: half, Type: Static}
}

func (b *Body) IsStatic() bool {
	return b.Type == Static
}

// Inert reports a box that was logically removed by shrinking it to a point.
func (b *Body) Inert() bool {
	return b.HalfExtents.X == 0 && b.HalfExtents.Y == 0 && b.HalfExtents.Z == 0
}

// AABB returns the box bounds.
func (b *Body) AABB() AABB {
	return NewAABBFromCenter(b.Position, b.HalfExtents)
}

func (b *Body) Validate() error {
	h := b.HalfExtents
	if h.X < 0 || h.Y < 0 || h.Z < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeExtent, h)
	}
	if !finite3(b.Position) || !finite3(b.Velocity) || !finite3(h) {
		return fmt.Errorf("physics: body has non-finite state (pos %v, vel %v, half %v)", b.Position, b.Velocity, h)
	}
	return nil
}

// Sphere is a free-floating ball. A radius of zero marks a logically removed
// ball; it keeps falling but never touches anything.
type Sphere struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Radius   float32
	Mass     float32
}

func NewSphere(pos rl.Vector3, radius, mass float32) *Sphere {
	return &Sphere{Position: pos, Radius: radius, Mass: mass}
}

func (s *Sphere) Inert() bool {
	return s.Radius == 0
}

// Remove shrinks the sphere to zero radius so it stays in its collection
// without taking part in collisions.
func (s *Sphere) Remove() {
	s.Radius = 0
}

func (s *Sphere) Validate() error {
	if s.Radius < 0 || math32.IsNaN(s.Radius) {
		return fmt.Errorf("%w: %v", ErrNegativeRadius, s.Radius)
	}
	if !(s.Mass > 0) || math32.IsInf(s.Mass, 1) {
		return fmt.Errorf("%w: %v", ErrNonPositiveMass, s.Mass)
	}
	if !finite3(s.Position) || !finite3(s.Velocity) {
		return fmt.Errorf("physics: sphere has non-finite state (pos %v, vel %v)", s.Position, s.Velocity)
	}
	return nil
}
