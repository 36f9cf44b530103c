package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ballpit/internal/physics"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadYAMLKeepsMissingDefaults(t *testing.T) {
	path := writeFile(t, "sim.yaml", `
tickRate: 120
seed: 9
physics:
  iterations: 12
  broadPhase: grid
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TickRate != 120 || cfg.Seed != 9 {
		t.Errorf("Expected tickRate 120 seed 9, got %d %d", cfg.TickRate, cfg.Seed)
	}
	if cfg.Physics.Iterations != 12 || cfg.Physics.BroadPhase != physics.BroadPhaseGrid {
		t.Errorf("Unexpected physics overrides: %+v", cfg.Physics)
	}
	if cfg.Physics.Gravity != -9.81 || cfg.Duration != 10 {
		t.Errorf("Expected untouched fields to keep defaults, got %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "sim.json", `{"duration": 2.5, "physics": {"convergenceEpsilon": 0.001}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Duration != 2.5 || cfg.Physics.ConvergenceEpsilon != 0.001 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Ticks() != 150 {
		t.Errorf("Expected 150 ticks, got %d", cfg.Ticks())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		data   string
		target error
	}{
		{"bad tick rate", "a.yaml", "tickRate: 0", ErrInvalid},
		{"negative duration", "b.json", `{"duration": -1}`, ErrInvalid},
		{"bad physics", "c.yml", "physics:\n  iterations: 0", physics.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.data))
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}

	if _, err := Load(writeFile(t, "d.json", "{")); err == nil {
		t.Error("Expected a parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestDtAndTicks(t *testing.T) {
	cfg := Default()
	if cfg.Ticks() != 600 {
		t.Errorf("Expected 600 ticks, got %d", cfg.Ticks())
	}
	if cfg.Dt() != 1.0/60 {
		t.Errorf("Expected dt 1/60, got %v", cfg.Dt())
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv(PathEnv, "/tmp/sim.yaml")
	if got := DefaultPath(); got != "/tmp/sim.yaml" {
		t.Errorf("Expected env path, got %q", got)
	}
	if got := GetEnv("BALLPIT_UNSET_FOR_TEST", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
}
