package canvas2d

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/canvas2d/surface"
)

// Config is the declarative form of the canvas options, suitable for
// loading from TOML or YAML files.
//
// Example (TOML):
//
//	supersampling = 2.0
//	stroke_color = "#ff0000"
//	line_cap = "square"
//
//	[canvas_style]
//	border = "1px solid black"
//
//	[container_style]
//	width = "640px"
//	height = "480px"
type Config struct {
	// Supersampling is the supersampling factor. Nil means DefaultSupersampling.
	Supersampling *float64 `toml:"supersampling,omitempty" yaml:"supersampling,omitempty"`

	// CanvasStyle holds style properties for the visible canvas element.
	CanvasStyle Style `toml:"canvas_style,omitempty" yaml:"canvas_style,omitempty"`

	// ContainerStyle holds style properties for the container element.
	// Nil means DefaultContainerStyle.
	ContainerStyle Style `toml:"container_style,omitempty" yaml:"container_style,omitempty"`

	// StrokeColor is a hex color for DrawLine. Empty means opaque black.
	StrokeColor string `toml:"stroke_color,omitempty" yaml:"stroke_color,omitempty"`

	// LineWidth is the DrawLine stroke width. Zero means 1.
	LineWidth float64 `toml:"line_width,omitempty" yaml:"line_width,omitempty"`

	// LineCap is the DrawLine end cap, "butt" or "square". Empty means butt.
	LineCap string `toml:"line_cap,omitempty" yaml:"line_cap,omitempty"`
}

// Options converts the config to functional options, validating it on
// the way. A nil config is an error.
func (c *Config) Options() ([]Option, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: missing configuration", ErrInvalidConfig)
	}
	var opts []Option
	if c.Supersampling != nil {
		opts = append(opts, WithSupersampling(*c.Supersampling))
	}
	if c.CanvasStyle != nil {
		opts = append(opts, WithCanvasStyle(c.CanvasStyle))
	}
	if c.ContainerStyle != nil {
		opts = append(opts, WithContainerStyle(c.ContainerStyle))
	}
	if c.StrokeColor != "" {
		col, err := ParseHexColor(c.StrokeColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithStrokeColor(col))
	}
	if c.LineWidth != 0 {
		opts = append(opts, WithLineWidth(c.LineWidth))
	}
	if c.LineCap != "" {
		lc, ok := surface.ParseLineCap(c.LineCap)
		if !ok {
			return nil, fmt.Errorf("%w: line cap %q", ErrInvalidConfig, c.LineCap)
		}
		opts = append(opts, WithLineCap(lc))
	}
	return opts, nil
}

// LoadConfig reads a config file. The format is chosen by extension:
// ".toml", ".yaml" or ".yml". Unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, err := DecodeConfig(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a config from r. Format is "toml", "yaml" or "yml",
// with or without a leading dot.
func DecodeConfig(r io.Reader, format string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, format)
	}
	return &cfg, nil
}
