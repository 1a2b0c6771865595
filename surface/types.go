// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"
	"strings"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// String returns the CSS name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// ParseLineCap returns the cap with the given CSS name ("butt" or
// "square"), ignoring case and surrounding space.
func ParseLineCap(name string) (LineCap, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "butt":
		return LineCapButt, true
	case "square":
		return LineCapSquare, true
	}
	return LineCapButt, false
}

// StrokeStyle defines how to stroke a line.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in pixels.
	Width float64

	// Cap is the line cap style.
	Cap LineCap
}

// DefaultStrokeStyle returns a StrokeStyle with default values.
// Uses black color, 1px width, butt caps.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: color.Black,
		Width: 1.0,
		Cap:   LineCapButt,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the specified line cap.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}
