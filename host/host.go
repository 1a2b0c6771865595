// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"math"

	"github.com/gogpu/canvas2d/surface"
)

// Host is the platform collaborator a canvas attaches to.
//
// It creates raster surfaces, reports the on-screen geometry of the canvas
// container, applies style properties to the elements it owns and delivers
// lifecycle notifications. Hosts are expected to call subscribers on the
// same goroutine that drives the canvas.
type Host interface {
	// NewSurface returns a new blank raster surface.
	NewSurface() (surface.Surface, error)

	// Bounds returns the current on-screen bounding rectangle of the
	// canvas container in device-independent pixels.
	Bounds() Rect

	// ApplyStyle forwards validated style properties to the element
	// identified by target.
	ApplyStyle(target Target, style Style) error

	// Subscribe registers fn for lifecycle notifications. The returned
	// function removes the subscription; calling it more than once is safe.
	Subscribe(fn func(Event)) (cancel func())
}

// Rect is an on-screen bounding rectangle size.
type Rect struct {
	Width  float64
	Height float64
}

// Size returns the rectangle as whole pixels, truncating fractions the way
// assigning a float to a canvas dimension does. Negative, NaN and infinite
// values become zero; finite values beyond math.MaxInt32 saturate there.
func (r Rect) Size() (width, height int) {
	return toPixels(r.Width), toPixels(r.Height)
}

func toPixels(v float64) int {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || v <= 0:
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(v)
}

// Target identifies a host element that receives style properties.
type Target uint8

const (
	// TargetCanvas is the visible drawing surface element.
	TargetCanvas Target = iota

	// TargetContainer is the element wrapping the canvas.
	TargetContainer
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetCanvas:
		return "canvas"
	case TargetContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Style maps DOM style property names (camelCase) to values.
type Style map[string]string

// Clone returns a copy of s. A nil style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	c := make(Style, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// EventKind identifies a lifecycle notification.
type EventKind uint8

const (
	// EventLayoutReady fires once after the initial placement.
	EventLayoutReady EventKind = iota + 1

	// EventViewportChanged fires on every subsequent geometry change.
	EventViewportChanged
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventLayoutReady:
		return "layout-ready"
	case EventViewportChanged:
		return "viewport-changed"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification delivered to subscribers.
type Event struct {
	Kind EventKind

	// Bounds is the container geometry at the time of the event.
	Bounds Rect
}

// Options configures host creation through the registry.
type Options struct {
	// Width and Height are the initial container size for hosts that do
	// not derive geometry from a real display.
	Width  float64
	Height float64
}
