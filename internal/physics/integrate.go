package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// StepBody advances a dynamic box by dt under cfg.Gravity. Downward speed is
// capped at cfg.TerminalVelocity. A box whose bottom face ends below y=0 is
// snapped onto the ground, loses its vertical velocity and becomes grounded.
// Static bodies are left untouched.
//
// StepBody panics if dt is negative or not finite.
func StepBody(cfg Config, b *Body, dt float32) {
	mustDelta(dt)
	mustBox(b)
	if b.IsStatic() {
		return
	}

	applyGravity(cfg, &b.Velocity, dt)
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))

	if b.Position.Y-b.HalfExtents.Y < 0 {
		b.Position.Y = b.HalfExtents.Y
		b.Velocity.Y = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}
}

// StepSphere advances a sphere by dt. On ground contact it rests exactly on
// y=0 and its vertical velocity is reflected and scaled by
// cfg.GroundRestitution.
//
// StepSphere panics if dt is negative or not finite, or the sphere has a
// negative radius or non-positive mass.
func StepSphere(cfg Config, s *Sphere, dt float32) {
	mustDelta(dt)
	mustSphere(s)

	applyGravity(cfg, &s.Velocity, dt)
	s.Position = rl.Vector3Add(s.Position, rl.Vector3Scale(s.Velocity, dt))

	if s.Position.Y-s.Radius < 0 {
		s.Position.Y = s.Radius
		s.Velocity.Y *= -cfg.GroundRestitution
	}
}

func applyGravity(cfg Config, v *rl.Vector3, dt float32) {
	v.Y += cfg.Gravity * dt
	if v.Y < -cfg.TerminalVelocity {
		v.Y = -cfg.TerminalVelocity
	}
}
