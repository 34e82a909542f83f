// Package config loads export settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given
const DefaultFile = "gourdf.yaml"

// Config describes how meshes and the robot description are exported
type Config struct {
	// Robot names the <robot> element and the output .urdf file
	Robot string `yaml:"robot"`
	// Package is the ROS package meshes are referenced from.
	// Empty means "<robot>_description".
	Package string `yaml:"package"`
	// MeshDir is the directory below the output folder that receives meshes
	MeshDir string `yaml:"meshDir"`
	// Density in kg/m³ used to derive mass from mesh volume
	Density float64 `yaml:"density"`
	// Scale converts mesh units to meters
	Scale float64 `yaml:"scale"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Robot:   "robot",
		MeshDir: "meshes",
		Density: 1000,
		Scale:   0.001,
	}
}

// Load reads path on top of the defaults. A missing file is only an error
// when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err := decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// PackageName returns the configured package or the one derived from Robot
func (c Config) PackageName() string {
	if c.Package != "" {
		return c.Package
	}
	return c.Robot + "_description"
}

// Validate reports settings that would produce an unusable export
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Robot) == "" {
		errs = append(errs, errors.New("robot name must not be empty"))
	}
	if c.MeshDir == "" {
		errs = append(errs, errors.New("mesh directory must not be empty"))
	}
	if c.Density <= 0 {
		errs = append(errs, fmt.Errorf("density must be positive, got %g", c.Density))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", c.Scale))
	}
	return errors.Join(errs...)
}
