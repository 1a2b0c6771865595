package canvas2d

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/canvas2d/surface"
)

// DefaultSupersampling is the supersampling factor used when none is configured.
const DefaultSupersampling = 1.0

// Option configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default settings
//	c, err := canvas2d.New()
//
//	// 2× supersampling with a bordered canvas
//	c, err := canvas2d.New(
//	    canvas2d.WithSupersampling(2),
//	    canvas2d.WithCanvasStyle(canvas2d.Style{"border": "1px solid black"}),
//	)
type Option func(*options) error

// options holds the validated configuration of a Canvas.
type options struct {
	supersampling  float64
	canvasStyle    Style
	containerStyle Style
	stroke         surface.StrokeStyle
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		supersampling:  DefaultSupersampling,
		canvasStyle:    nil,
		containerStyle: nil, // DefaultContainerStyle is applied on attach
		stroke:         surface.DefaultStrokeStyle(),
	}
}

// WithSupersampling sets the supersampling factor: the number of buffer
// pixels per logical pixel along each axis. The factor must be positive
// and finite.
func WithSupersampling(factor float64) Option {
	return func(o *options) error {
		if err := validateSupersampling(factor); err != nil {
			return err
		}
		o.supersampling = factor
		return nil
	}
}

// WithCanvasStyle sets style properties for the visible canvas element.
func WithCanvasStyle(s Style) Option {
	return func(o *options) error {
		n, err := NormalizeStyle(s)
		if err != nil {
			return fmt.Errorf("canvas style: %w", err)
		}
		o.canvasStyle = n
		return nil
	}
}

// WithContainerStyle sets style properties for the container element,
// replacing DefaultContainerStyle.
func WithContainerStyle(s Style) Option {
	return func(o *options) error {
		n, err := NormalizeStyle(s)
		if err != nil {
			return fmt.Errorf("container style: %w", err)
		}
		o.containerStyle = n
		return nil
	}
}

// WithStrokeColor sets the color used by DrawLine. Default: opaque black.
func WithStrokeColor(c color.Color) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("%w: nil stroke color", ErrInvalidConfig)
		}
		o.stroke = o.stroke.WithColor(c)
		return nil
	}
}

// WithLineWidth sets the stroke width used by DrawLine, in logical pixels.
// Default: 1.
func WithLineWidth(w float64) Option {
	return func(o *options) error {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: line width %v must be positive and finite", ErrInvalidConfig, w)
		}
		o.stroke = o.stroke.WithWidth(w)
		return nil
	}
}

// WithLineCap sets the end cap used by DrawLine. Default: LineCapButt.
func WithLineCap(c surface.LineCap) Option {
	return func(o *options) error {
		switch c {
		case surface.LineCapButt, surface.LineCapSquare:
		default:
			return fmt.Errorf("%w: unknown line cap %d", ErrInvalidConfig, uint8(c))
		}
		o.stroke = o.stroke.WithCap(c)
		return nil
	}
}

// validateSupersampling rejects zero, negative, NaN and infinite factors.
func validateSupersampling(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: supersampling factor %v must be positive and finite", ErrInvalidConfig, factor)
	}
	return nil
}
