package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlapsBoxBox tests two boxes per axis on closed intervals: boxes that
// exactly touch overlap. Inert boxes never overlap anything.
func OverlapsBoxBox(a, b *Body) bool {
	if a.Inert() || b.Inert() {
		return false
	}
	return math32.Abs(a.Position.X-b.Position.X) <= a.HalfExtents.X+b.HalfExtents.X &&
		math32.Abs(a.Position.Y-b.Position.Y) <= a.HalfExtents.Y+b.HalfExtents.Y &&
		math32.Abs(a.Position.Z-b.Position.Z) <= a.HalfExtents.Z+b.HalfExtents.Z
}

// OverlapsSphereSphere is strict: spheres that exactly touch do not overlap.
func OverlapsSphereSphere(a, b *Sphere) bool {
	if a.Inert() || b.Inert() {
		return false
	}
	diff := rl.Vector3Subtract(b.Position, a.Position)
	minDist := a.Radius + b.Radius
	return rl.Vector3DotProduct(diff, diff) < minDist*minDist
}

// OverlapsSphereBox tests the sphere center against the closest point on the
// box. Touching counts as overlapping.
func OverlapsSphereBox(s *Sphere, box *Body) bool {
	if s.Inert() || box.Inert() {
		return false
	}
	diff := rl.Vector3Subtract(s.Position, box.AABB().ClosestPoint(s.Position))
	return rl.Vector3DotProduct(diff, diff) <= s.Radius*s.Radius
}

// ResolveBoxBox pushes a out of b along whichever horizontal axis (X or Z)
// has the larger center offset. b never moves and the vertical axis is never
// corrected; only the ground plane handles vertical box contact. Nothing
// happens when a is static or the boxes do not overlap. It returns the
// correction applied and whether the boxes were in contact.
func ResolveBoxBox(a, b *Body) (float32, bool) {
	mustBox(a)
	mustBox(b)
	if a.IsStatic() || !OverlapsBoxBox(a, b) {
		return 0, false
	}

	diff := rl.Vector3Subtract(a.Position, b.Position)
	if math32.Abs(diff.X) > math32.Abs(diff.Z) {
		overlap := a.HalfExtents.X + b.HalfExtents.X - math32.Abs(diff.X)
		if diff.X > 0 {
			a.Position.X += overlap
		} else {
			a.Position.X -= overlap
		}
		return overlap, true
	}

	overlap := a.HalfExtents.Z + b.HalfExtents.Z - math32.Abs(diff.Z)
	if diff.Z > 0 {
		a.Position.Z += overlap
	} else {
		a.Position.Z -= overlap
	}
	return overlap, true
}

// ResolveSphereSphere separates two overlapping spheres, splitting the
// penetration evenly, and applies a restitution impulse weighted by inverse
// mass when they are approaching. It returns the penetration depth and
// whether the spheres were in contact.
func ResolveSphereSphere(cfg Config, a, b *Sphere) (float32, bool) {
	mustSphere(a)
	mustSphere(b)
	if a.Inert() || b.Inert() {
		return 0, false
	}

	diff := rl.Vector3Subtract(b.Position, a.Position)
	dist2 := rl.Vector3DotProduct(diff, diff)
	minDist := a.Radius + b.Radius
	if dist2 >= minDist*minDist {
		return 0, false
	}

	dist := math32.Sqrt(dist2)
	if dist < cfg.Epsilon {
		dist = cfg.Epsilon
	}

	// Normal points from a to b
	normal := rl.Vector3Scale(diff, 1/dist)
	penetration := minDist - dist

	push := rl.Vector3Scale(normal, penetration*0.5)
	a.Position = rl.Vector3Subtract(a.Position, push)
	b.Position = rl.Vector3Add(b.Position, push)

	relVel := rl.Vector3Subtract(b.Velocity, a.Velocity)
	velN := rl.Vector3DotProduct(relVel, normal)
	if velN > 0 {
		return penetration, true
	}

	j := -(1 + cfg.SphereRestitution) * velN / (1/a.Mass + 1/b.Mass)
	impulse := rl.Vector3Scale(normal, j)
	a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(impulse, 1/a.Mass))
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, 1/b.Mass))

	return penetration, true
}

// ResolveSphereBox pushes a sphere fully out of an immovable box, removes
// its velocity along the contact normal and then scales what is left by
// cfg.BoxContactDamping. It returns the penetration depth and whether the
// sphere was in contact.
func ResolveSphereBox(cfg Config, s *Sphere, box *Body) (float32, bool) {
	mustSphere(s)
	mustBox(box)
	if s.Inert() || box.Inert() {
		return 0, false
	}

	closest := box.AABB().ClosestPoint(s.Position)
	diff := rl.Vector3Subtract(s.Position, closest)
	dist2 := rl.Vector3DotProduct(diff, diff)
	if dist2 > s.Radius*s.Radius {
		return 0, false
	}

	dist := math32.Sqrt(dist2)
	if dist < cfg.Epsilon {
		dist = cfg.Epsilon
	}

	// Normal points from box to sphere
	normal := rl.Vector3Scale(diff, 1/dist)
	penetration := s.Radius - dist

	s.Position = rl.Vector3Add(s.Position, rl.Vector3Scale(normal, penetration))

	vN := rl.Vector3DotProduct(s.Velocity, normal)
	s.Velocity = rl.Vector3Subtract(s.Velocity, rl.Vector3Scale(normal, vN))
	s.Velocity = rl.Vector3Scale(s.Velocity, cfg.BoxContactDamping)

	return penetration, true
}
