package physics

import (
	"errors"
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestStepBodyTerminalVelocity(t *testing.T) {
	cfg := DefaultConfig()
	b := NewDynamicBody(rl.Vector3{Y: 1e6}, rl.Vector3{X: 0.5, Y: 1, Z: 0.5})

	for i := 0; i < 2000; i++ {
		StepBody(cfg, b, 1.0/60)
		if b.Velocity.Y < -20 {
			t.Fatalf("step %d: vertical speed %v exceeds terminal velocity", i, -b.Velocity.Y)
		}
	}
	if b.Velocity.Y != -20 {
		t.Errorf("Expected vertical velocity -20, got %v", b.Velocity.Y)
	}
	if b.Grounded {
		t.Error("Body in free fall should not be grounded")
	}
}

func TestStepSphereTerminalVelocity(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSphere(rl.Vector3{Y: 1e6}, 0.3, 1)

	for i := 0; i < 2000; i++ {
		StepSphere(cfg, s, 1.0/60)
		if s.Velocity.Y < -20 {
			t.Fatalf("step %d: vertical speed %v exceeds terminal velocity", i, -s.Velocity.Y)
		}
	}
	if s.Velocity.Y != -20 {
		t.Errorf("Expected vertical velocity -20, got %v", s.Velocity.Y)
	}
}

func TestStepBodyGroundContact(t *testing.T) {
	cfg := DefaultConfig()
	b := NewDynamicBody(rl.Vector3{X: 3, Y: 1.05, Z: -2}, rl.Vector3{X: 0.5, Y: 1, Z: 0.5})
	b.Velocity = rl.Vector3{X: 1, Y: -10, Z: 2}

	StepBody(cfg, b, 0.1)

	if b.Position.Y != 1 {
		t.Errorf("Expected body to rest at y=1, got %v", b.Position.Y)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("Expected vertical velocity 0, got %v", b.Velocity.Y)
	}
	if !b.Grounded {
		t.Error("Body on the ground should be grounded")
	}
	// horizontal motion is untouched
	if !approx(b.Position.X, 3.1, 1e-5) || !approx(b.Position.Z, -1.8, 1e-5) {
		t.Errorf("Horizontal position wrong: %+v", b.Position)
	}
}

func TestStepBodyNeverBelowGround(t *testing.T) {
	cfg := DefaultConfig()
	dts := []float32{0, 1.0 / 240, 1.0 / 60, 0.05, 0.25, 1}

	for _, dt := range dts {
		b := NewDynamicBody(rl.Vector3{Y: 4}, rl.Vector3{X: 0.5, Y: 1, Z: 0.5})
		b.Velocity.Y = 3
		for i := 0; i < 500; i++ {
			StepBody(cfg, b, dt)
			if b.Position.Y-b.HalfExtents.Y < 0 {
				t.Fatalf("dt=%v step %d: bottom face at %v", dt, i, b.Position.Y-b.HalfExtents.Y)
			}
		}
	}
}

func TestStepBodyLeavesGround(t *testing.T) {
	cfg := DefaultConfig()
	b := NewDynamicBody(rl.Vector3{Y: 1}, rl.Vector3{X: 0.5, Y: 1, Z: 0.5})
	StepBody(cfg, b, 1.0/60)
	if !b.Grounded {
		t.Fatal("Expected grounded after settling")
	}

	b.Velocity.Y = 6
	StepBody(cfg, b, 1.0/60)
	if b.Grounded {
		t.Error("Body moving upward should not stay grounded")
	}
}

func TestStepBodyStaticIsUntouched(t *testing.T) {
	cfg := DefaultConfig()
	b := NewStaticBody(rl.Vector3{Y: 10}, rl.Vector3{X: 1, Y: 1, Z: 1})
	StepBody(cfg, b, 1)
	if b.Position.Y != 10 || b.Velocity.Y != 0 {
		t.Errorf("Static body moved: pos %+v vel %+v", b.Position, b.Velocity)
	}
}

func TestStepSphereBounce(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSphere(rl.Vector3{Y: 0.31}, 0.3, 1)
	s.Velocity.Y = -5
	dt := float32(0.01)

	impact := s.Velocity.Y + cfg.Gravity*dt
	StepSphere(cfg, s, dt)

	if s.Position.Y != 0.3 {
		t.Errorf("Expected sphere to rest at y=0.3, got %v", s.Position.Y)
	}
	if !approx(s.Velocity.Y, -impact*0.4, 1e-5) {
		t.Errorf("Expected rebound %v, got %v", -impact*0.4, s.Velocity.Y)
	}
}

func TestStepSphereBounceDecay(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSphere(rl.Vector3{Y: 5}, 0.3, 1)
	dt := float32(1.0 / 1000)

	var rebounds []float32
	for i := 0; i < 20000 && len(rebounds) < 4; i++ {
		before := s.Velocity.Y
		StepSphere(cfg, s, dt)
		if before < 0 && s.Velocity.Y > 0 {
			rebounds = append(rebounds, s.Velocity.Y)
		}
	}
	if len(rebounds) < 4 {
		t.Fatalf("Expected 4 bounces, got %d", len(rebounds))
	}

	for k := 1; k < len(rebounds); k++ {
		ratio := rebounds[k] / rebounds[k-1]
		if !approx(ratio, 0.4, 0.02) {
			t.Errorf("bounce %d: rebound ratio %v, expected about 0.4", k, ratio)
		}
	}
}

func TestStepPanicsOnBadDelta(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		dt   float32
		want error
	}{
		{"negative", -0.01, ErrNegativeDelta},
		{"NaN", float32(math.NaN()), ErrNonFiniteDelta},
		{"infinite", float32(math.Inf(1)), ErrNonFiniteDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, tt.want) {
					t.Errorf("Expected panic with %v, got %v", tt.want, r)
				}
			}()
			StepSphere(cfg, NewSphere(rl.Vector3{Y: 1}, 0.3, 1), tt.dt)
		})
	}
}

func TestStepSpherePanicsOnBadShape(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		sphere *Sphere
		want   error
	}{
		{"negative radius", NewSphere(rl.Vector3{Y: 1}, -0.1, 1), ErrNegativeRadius},
		{"zero mass", NewSphere(rl.Vector3{Y: 1}, 0.3, 0), ErrNonPositiveMass},
		{"negative mass", NewSphere(rl.Vector3{Y: 1}, 0.3, -2), ErrNonPositiveMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, tt.want) {
					t.Errorf("Expected panic with %v, got %v", tt.want, r)
				}
			}()
			StepSphere(cfg, tt.sphere, 1.0/60)
		})
	}
}

func TestStepSphereUsesConfiguredGravity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = -1
	s := NewSphere(rl.Vector3{Y: 100}, 0.3, 1)
	StepSphere(cfg, s, 0.5)
	if s.Velocity.Y != -0.5 {
		t.Errorf("Expected vertical velocity -0.5, got %v", s.Velocity.Y)
	}
}
