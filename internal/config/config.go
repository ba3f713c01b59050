// Package config handles meshgen configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/tablescene/internal/engine/mesh"
	"github.com/Faultbox/tablescene/internal/export"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all meshgen settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh" toml:"mesh"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Scene overrides the built-in scene parts when non-empty.
	Scene []PartConfig `yaml:"scene,omitempty" toml:"scene,omitempty"`
}

// MeshConfig holds default subdivision counts used when a part or
// command line does not set its own.
type MeshConfig struct {
	Sides         int `yaml:"sides" toml:"sides"`
	ConeSides     int `yaml:"cone_sides" toml:"cone_sides"`
	Rings         int `yaml:"rings" toml:"rings"`
	Segments      int `yaml:"segments" toml:"segments"`
	PlaneSections int `yaml:"plane_sections" toml:"plane_sections"`
}

// OutputConfig controls where and how meshes are written.
type OutputConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// PartConfig describes one scene part. Zero counts fall back to MeshConfig.
type PartConfig struct {
	Name     string     `yaml:"name" toml:"name"`
	Shape    string     `yaml:"shape" toml:"shape"`
	Sides    int        `yaml:"sides,omitempty" toml:"sides,omitempty"`
	Rings    int        `yaml:"rings,omitempty" toml:"rings,omitempty"`
	Segments int        `yaml:"segments,omitempty" toml:"segments,omitempty"`
	Sections int        `yaml:"sections,omitempty" toml:"sections,omitempty"`
	Height   float32    `yaml:"height,omitempty" toml:"height,omitempty"`
	Radius   float32    `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Color    [4]float32 `yaml:"color" toml:"color"`

	// Placement in the scene. Rotation is in degrees about X, Y, Z and a
	// zero Scale means 1.
	Position [3]float32 `yaml:"position,omitempty,flow" toml:"position,omitempty"`
	Rotation [3]float32 `yaml:"rotation,omitempty,flow" toml:"rotation,omitempty"`
	Scale    float32    `yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// Default returns a Config with the resolution of the table scene.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Sides:         20,
			ConeSides:     20,
			Rings:         mesh.DefaultRings,
			Segments:      mesh.DefaultSegments,
			PlaneSections: 10,
		},
		Output: OutputConfig{
			Dir:    "out",
			Format: export.FormatOBJ,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks output settings and default counts.
func (c *Config) Validate() error {
	if _, err := export.Extension(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w: %w", err, ErrInvalidConfig)
	}

	counts := []struct {
		name string
		v    int
		min  int
	}{
		{"mesh.sides", c.Mesh.Sides, mesh.MinSides},
		{"mesh.cone_sides", c.Mesh.ConeSides, mesh.MinSides},
		{"mesh.rings", c.Mesh.Rings, 1},
		{"mesh.segments", c.Mesh.Segments, 1},
		{"mesh.plane_sections", c.Mesh.PlaneSections, 1},
	}
	for _, n := range counts {
		if n.v < n.min {
			return fmt.Errorf("%s must be >= %d, got %d: %w", n.name, n.min, n.v, ErrInvalidConfig)
		}
	}

	for i, p := range c.Scene {
		if p.Shape == "" {
			return fmt.Errorf("scene[%d] %q: missing shape: %w", i, p.Name, ErrInvalidConfig)
		}
	}
	return nil
}
