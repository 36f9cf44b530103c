package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ballpit/internal/physics"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid settings")

// Config holds physics tuning plus the settings of a headless run.
type Config struct {
	Physics physics.Config `yaml:"physics" json:"physics"`

	TickRate int     `yaml:"tickRate" json:"tickRate"` // Hz
	Duration float32 `yaml:"duration" json:"duration"` // seconds
	Seed     int64   `yaml:"seed" json:"seed"`
	Scene    string  `yaml:"scene,omitempty" json:"scene,omitempty"`
	LogLevel string  `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
}

func Default() Config {
	return Config{
		Physics:  physics.DefaultConfig(),
		TickRate: 60,
		Duration: 10,
		Seed:     1,
		LogLevel: "info",
	}
}

// Load reads the file at path over Default(), so fields the file leaves out
// keep their defaults. An empty path returns Default(). Files ending in
// .yaml or .yml are parsed as YAML, anything else as JSON.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.TickRate)
	}
	if c.Duration < 0 || math32.IsNaN(c.Duration) || math32.IsInf(c.Duration, 0) {
		return fmt.Errorf("%w: duration %v", ErrInvalid, c.Duration)
	}
	return c.Physics.Validate()
}

// Dt is the fixed step length.
func (c Config) Dt() float32 {
	return 1 / float32(c.TickRate)
}

// Ticks is the number of fixed steps that cover Duration.
func (c Config) Ticks() int {
	return int(c.Duration*float32(c.TickRate) + 0.5)
}
