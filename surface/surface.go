// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
)

// Surface is a raster drawing target supplied by the host platform.
//
// A Surface is a width × height grid of non-premultiplied (straight alpha)
// RGBA pixels with a uniform scale transform. The transform applies to
// DrawSurface only: PutPixels and StrokeLine address device pixels
// directly, the way putImageData ignores the current transform of an HTML
// canvas.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(100, 50)
//	defer s.Close()
//
//	s.SetScale(0.5, 0.5)
//	s.DrawSurface(offscreen, 0, 0) // offscreen is 200×100
//	img := s.Snapshot()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// SetSize changes the pixel dimensions. Existing content is discarded
	// and the scale transform is reset to identity.
	SetSize(width, height int)

	// SetScale sets the scale transform used by DrawSurface.
	// The transform is absolute; it does not accumulate.
	SetScale(sx, sy float64)

	// PutPixels replaces the pixels at (x, y) with src, ignoring the
	// transform. Pixels falling outside the surface are dropped. Channel
	// values are stored exactly as given.
	PutPixels(src *image.NRGBA, x, y int)

	// DrawSurface draws the whole content of src at (x, y) through the
	// scale transform. Source pixels replace destination pixels.
	DrawSurface(src Surface, x, y float64)

	// StrokeLine strokes a straight segment between two points given in
	// device pixels.
	StrokeLine(x1, y1, x2, y2 float64, style StrokeStyle)

	// Snapshot returns the current surface contents as a straight alpha image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.NRGBA

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}
