package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitKind identifies what a ray hit. Kinds are bit flags so they double as
// a query mask.
type HitKind uint8

const (
	HitGround HitKind = 1 << iota
	HitObstacle
	HitContainer
	HitPlayer
	HitSphere

	HitAll = HitGround | HitObstacle | HitContainer | HitPlayer | HitSphere
)

func (k HitKind) String() string {
	switch k {
	case HitGround:
		return "ground"
	case HitObstacle:
		return "obstacle"
	case HitContainer:
		return "container"
	case HitPlayer:
		return "player"
	case HitSphere:
		return "sphere"
	}
	return fmt.Sprintf("HitKind(%#x)", uint8(k))
}

type RaycastHit struct {
	Kind     HitKind
	Index    int // into the matching collection, 0 for ground and player
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest hit within maxDistance among the kinds in
// mask. Inert shapes are skipped.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask HitKind) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	consider := func(h RaycastHit, ok bool, kind HitKind, index int) {
		if ok && h.Distance < closest.Distance {
			h.Kind = kind
			h.Index = index
			closest = h
			hit = true
		}
	}

	if mask&HitGround != 0 {
		h, ok := raycastGround(origin, direction, maxDistance)
		consider(h, ok, HitGround, 0)
	}
	if mask&HitObstacle != 0 {
		for i := range w.Obstacles {
			h, ok := raycastBox(origin, direction, &w.Obstacles[i], maxDistance)
			consider(h, ok, HitObstacle, i)
		}
	}
	if mask&HitContainer != 0 {
		for i := range w.Container {
			h, ok := raycastBox(origin, direction, &w.Container[i], maxDistance)
			consider(h, ok, HitContainer, i)
		}
	}
	if mask&HitPlayer != 0 && w.Player != nil {
		h, ok := raycastBox(origin, direction, w.Player, maxDistance)
		consider(h, ok, HitPlayer, 0)
	}
	if mask&HitSphere != 0 {
		for i := range w.Spheres {
			h, ok := raycastSphere(origin, direction, &w.Spheres[i], maxDistance)
			consider(h, ok, HitSphere, i)
		}
	}

	return closest, hit
}

func raycastGround(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if direction.Y >= 0 || origin.Y < 0 {
		return RaycastHit{}, false
	}
	t := -origin.Y / direction.Y
	if t > maxDistance {
		return RaycastHit{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	point.Y = 0
	return RaycastHit{Point: point, Normal: rl.Vector3{Y: 1}, Distance: t}, true
}

// slab narrows [tmin, tmax] to the part of the ray inside one axis slab.
func slab(o, d, lo, hi float32, tmin, tmax *float32) bool {
	if d == 0 {
		return o >= lo && o <= hi
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return *tmin <= *tmax
}

func raycastBox(origin, direction rl.Vector3, b *Body, maxDistance float32) (RaycastHit, bool) {
	if b.Inert() {
		return RaycastHit{}, false
	}
	box := b.AABB()
	min, max := box.Min, box.Max

	tmin, tmax := float32(-1e30), float32(1e30)
	if !slab(origin.X, direction.X, min.X, max.X, &tmin, &tmax) ||
		!slab(origin.Y, direction.Y, min.Y, max.Y, &tmin, &tmax) ||
		!slab(origin.Z, direction.Z, min.Z, max.Z, &tmin, &tmax) {
		return RaycastHit{}, false
	}
	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	// Starting inside the box reports the exit face.
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	var normal rl.Vector3
	const epsilon = 0.001
	switch {
	case math32.Abs(point.X-min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case math32.Abs(point.X-max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case math32.Abs(point.Y-min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case math32.Abs(point.Y-max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case math32.Abs(point.Z-min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, s *Sphere, maxDistance float32) (RaycastHit, bool) {
	if s.Inert() {
		return RaycastHit{}, false
	}

	oc := rl.Vector3Subtract(origin, s.Position)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	root := math32.Sqrt(discriminant)
	t := (-b - root) / (2 * a)
	if t < 0 {
		t = (-b + root) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, s.Position))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
