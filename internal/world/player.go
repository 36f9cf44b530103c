package world

import (
	"ballpit/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Move walks the player along dir projected onto the ground plane. The
// position is moved directly; the solver pushes it back out of obstacles on
// the next step.
func (w *World) Move(dir rl.Vector3, dt float32) {
	flat := rl.Vector3{X: dir.X, Z: dir.Z}
	if flat.X == 0 && flat.Z == 0 {
		return
	}
	step := rl.Vector3Scale(rl.Vector3Normalize(flat), WalkSpeed*dt)
	p := w.Player()
	p.Position = rl.Vector3Add(p.Position, step)
}

// Jump launches the player upward. Only works from the ground.
func (w *World) Jump() bool {
	p := w.Player()
	if !p.Grounded {
		return false
	}
	p.Velocity.Y = JumpSpeed
	p.Grounded = false
	return true
}

// RestingSpheres counts live spheres moving no faster than speed.
func (w *World) RestingSpheres(speed float32) int {
	n := 0
	for i := range w.Physics.Spheres {
		s := &w.Physics.Spheres[i]
		if s.Inert() {
			continue
		}
		if rl.Vector3Length(s.Velocity) <= speed {
			n++
		}
	}
	return n
}

// Support returns what lies directly below the player's feet within
// maxDistance: the ground, an obstacle or a ball.
func (w *World) Support(maxDistance float32) (physics.RaycastHit, bool) {
	p := w.Player()
	feet := rl.Vector3{X: p.Position.X, Y: p.Position.Y - p.HalfExtents.Y, Z: p.Position.Z}
	return w.Physics.Raycast(feet, rl.Vector3{Y: -1}, maxDistance, physics.HitAll&^physics.HitPlayer)
}
