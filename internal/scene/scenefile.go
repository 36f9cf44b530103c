package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ballpit/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- File types ---

// File describes every body of a simulation. Collection order is kept as
// written because the solver resolves pairs in that order.
type File struct {
	Player     *BoxDef     `yaml:"player,omitempty" json:"player,omitempty"`
	Obstacles  []BoxDef    `yaml:"obstacles,omitempty" json:"obstacles,omitempty"`
	Container  []BoxDef    `yaml:"container,omitempty" json:"container,omitempty"`
	Spheres    []SphereDef `yaml:"spheres,omitempty" json:"spheres,omitempty"`
	GoldenBall *int        `yaml:"goldenBall,omitempty" json:"goldenBall,omitempty"`
}

type BoxDef struct {
	Name        string     `yaml:"name,omitempty" json:"name,omitempty"`
	Position    [3]float32 `yaml:"position" json:"position"`
	Velocity    [3]float32 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	HalfExtents [3]float32 `yaml:"halfExtents" json:"halfExtents"`
}

type SphereDef struct {
	Position [3]float32 `yaml:"position" json:"position"`
	Velocity [3]float32 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	Radius   float32    `yaml:"radius" json:"radius"`
	Mass     float32    `yaml:"mass" json:"mass"`
}

func toVec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func fromVec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// --- Loading ---

// Load reads a scene file. Files ending in .yaml or .yml are parsed as YAML,
// anything else as JSON.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var f File
	if isYAML(path) {
		err = yaml.Unmarshal(data, &f)
	} else {
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &f, nil
}

// Build validates every entity and returns a world ready to step.
func (f *File) Build(cfg physics.Config) (*physics.World, error) {
	w, err := physics.NewWorld(cfg)
	if err != nil {
		return nil, err
	}

	if f.Player != nil {
		if err := w.SetPlayer(f.Player.body(physics.Dynamic)); err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
	}
	for _, def := range f.Obstacles {
		if err := w.AddObstacle(*def.body(physics.Static)); err != nil {
			return nil, fmt.Errorf("build scene: %s: %w", def.label(), err)
		}
	}
	for _, def := range f.Container {
		if err := w.AddContainerWall(*def.body(physics.Static)); err != nil {
			return nil, fmt.Errorf("build scene: %s: %w", def.label(), err)
		}
	}
	for _, def := range f.Spheres {
		s := physics.Sphere{
			Position: toVec(def.Position),
			Velocity: toVec(def.Velocity),
			Radius:   def.Radius,
			Mass:     def.Mass,
		}
		if _, err := w.AddSphere(s); err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
	}

	if f.GoldenBall != nil && (*f.GoldenBall < -1 || *f.GoldenBall >= len(f.Spheres)) {
		return nil, fmt.Errorf("build scene: golden ball %d out of range [0,%d)", *f.GoldenBall, len(f.Spheres))
	}
	return w, nil
}

// Golden returns the golden ball index, or -1 when the scene has none.
func (f *File) Golden() int {
	if f.GoldenBall == nil {
		return -1
	}
	return *f.GoldenBall
}

func (d BoxDef) body(t physics.BodyType) *physics.Body {
	return &physics.Body{
		Position:    toVec(d.Position),
		Velocity:    toVec(d.Velocity),
		HalfExtents: toVec(d.HalfExtents),
		Type:        t,
	}
}

func (d BoxDef) label() string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("box at %v", d.Position)
}

// --- Saving ---

// FromWorld captures the current state of w. Removed spheres are kept so
// indices stay stable.
func FromWorld(w *physics.World, golden int) *File {
	f := &File{}
	if w.Player != nil {
		f.Player = &BoxDef{
			Name:        "player",
			Position:    fromVec(w.Player.Position),
			Velocity:    fromVec(w.Player.Velocity),
			HalfExtents: fromVec(w.Player.HalfExtents),
		}
	}
	for _, b := range w.Obstacles {
		f.Obstacles = append(f.Obstacles, BoxDef{Position: fromVec(b.Position), HalfExtents: fromVec(b.HalfExtents)})
	}
	for _, b := range w.Container {
		f.Container = append(f.Container, BoxDef{Position: fromVec(b.Position), HalfExtents: fromVec(b.HalfExtents)})
	}
	for _, s := range w.Spheres {
		f.Spheres = append(f.Spheres, SphereDef{
			Position: fromVec(s.Position),
			Velocity: fromVec(s.Velocity),
			Radius:   s.Radius,
			Mass:     s.Mass,
		})
	}
	if golden >= 0 {
		f.GoldenBall = &golden
	}
	return f
}

// Save writes f to path in the format picked by its extension.
func Save(path string, f *File) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(f)
	} else {
		data, err = json.MarshalIndent(f, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
