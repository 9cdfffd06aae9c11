package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fractree/internal/tree"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 700
	DefaultScale  = 1
	DefaultOutput = "tree.png"
	DefaultFormat = "png"
)

type Config struct {
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Depth      int          `yaml:"depth"`
	Seed       int64        `yaml:"seed"`
	Angle      float64      `yaml:"angle"`
	TrunkColor string       `yaml:"trunk_color"`
	Origin     OriginConfig `yaml:"origin"`
	Scale      int          `yaml:"scale"`
	Output     string       `yaml:"output"`
	Format     string       `yaml:"format"`
}

type OriginConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Depth:      tree.DefaultDepth,
		Angle:      tree.DefaultAngle,
		TrunkColor: "#000000",
		Origin: OriginConfig{
			X: tree.DefaultOriginX,
			Y: tree.DefaultOriginY,
		},
		Scale:  DefaultScale,
		Output: DefaultOutput,
		Format: DefaultFormat,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the core would otherwise reject later.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("config: depth must be positive, got %d", c.Depth)
	}
	if c.Format != "png" && c.Format != "svg" {
		return fmt.Errorf("config: unknown format %q (png, svg)", c.Format)
	}
	return nil
}

// TreeConfig maps the file config onto generation parameters.
func (c *Config) TreeConfig() tree.Config {
	return tree.Config{
		Depth:      c.Depth,
		OriginX:    c.Origin.X,
		OriginY:    c.Origin.Y,
		Angle:      c.Angle,
		TrunkColor: c.TrunkColor,
		Seed:       c.Seed,
	}
}
