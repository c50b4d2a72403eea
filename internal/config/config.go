package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/helix/internal/helix"
)

const (
	DefaultWidth           = 1280
	DefaultHeight          = 720
	DefaultFPS             = 60
	DefaultTitle           = "helix"
	DefaultLabelText       = "DNA"
	DefaultFontPath        = "assets/fonts/label.ttf"
	DefaultTexturePath     = "assets/textures/label.png"
	DefaultLabelSize       = 32
	DefaultSphereRadius    = 0.3
	DefaultConnectorRadius = 0.08
	DefaultTheme           = "mono"
)

var ErrInvalidConfig = errors.New("config: invalid config")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Params helix.Params `yaml:"params"`
	Bounds helix.Bounds `yaml:"bounds"`
	Label  LabelConfig  `yaml:"label"`
	Style  StyleConfig  `yaml:"style"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// LabelConfig points at the assets of the optional text label. An empty
// font path disables the label.
type LabelConfig struct {
	Text    string  `yaml:"text"`
	Font    string  `yaml:"font"`
	Texture string  `yaml:"texture"`
	Size    float64 `yaml:"size"`
	OffsetY float64 `yaml:"offset_y"`
}

type StyleConfig struct {
	SphereRadius    float64 `yaml:"sphere_radius"`
	ConnectorRadius float64 `yaml:"connector_radius"`
	Theme           string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Title:  DefaultTitle,
		},
		Params: helix.DefaultParams(),
		Bounds: helix.DefaultBounds(),
		Label: LabelConfig{
			Text:    DefaultLabelText,
			Font:    DefaultFontPath,
			Texture: DefaultTexturePath,
			Size:    DefaultLabelSize,
			OffsetY: 1.5,
		},
		Style: StyleConfig{
			SphereRadius:    DefaultSphereRadius,
			ConnectorRadius: DefaultConnectorRadius,
			Theme:           DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	}
	if c.Style.SphereRadius <= 0 || c.Style.ConnectorRadius <= 0 {
		return fmt.Errorf("%w: style radii must be positive", ErrInvalidConfig)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Params.Validate(c.Bounds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
