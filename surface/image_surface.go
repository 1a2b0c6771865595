// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// sampleBias nudges scaled draws onto the top-left source pixel of each
// destination cell, clear of floating point error at cell boundaries.
const sampleBias = 1.0 / 256

// ImageSurface is a CPU-based surface that renders to an *image.NRGBA.
//
// Pixels keep straight alpha. Block writes and scaled compositing move whole
// pixels with golang.org/x/image/draw nearest-neighbour sampling and never
// blend, so channel values survive unchanged. Lines are rasterized with
// golang.org/x/image/vector into a coverage mask and composited
// source-over.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.StrokeLine(0, 0, 100, 100, surface.DefaultStrokeStyle())
//	img := s.Snapshot()
type ImageSurface struct {
	img *image.NRGBA

	scaleX float64
	scaleY float64

	// rasterizer and coverage are reused across StrokeLine calls
	rasterizer *vector.Rasterizer
	coverage   *image.Alpha

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// A zero-size surface is valid; negative dimensions are treated as zero.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{}
	s.SetSize(width, height)
	return s
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.NRGBA) *ImageSurface {
	return &ImageSurface{
		img:    img,
		scaleX: 1,
		scaleY: 1,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

// SetSize reallocates the backing image and resets the transform.
func (s *ImageSurface) SetSize(width, height int) {
	if s.closed {
		return
	}
	s.img = image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	s.scaleX, s.scaleY = 1, 1
}

// SetScale sets the scale transform used by DrawSurface.
func (s *ImageSurface) SetScale(sx, sy float64) {
	s.scaleX, s.scaleY = sx, sy
}

// Scale returns the current scale transform.
func (s *ImageSurface) Scale() (sx, sy float64) {
	return s.scaleX, s.scaleY
}

// PutPixels copies src onto the surface at (x, y), replacing what is there.
func (s *ImageSurface) PutPixels(src *image.NRGBA, x, y int) {
	if s.closed || src == nil {
		return
	}
	xdraw.Copy(rawView(s.img), image.Pt(x, y), rawView(src), src.Bounds(), xdraw.Src, nil)
}

// DrawSurface draws src at (x, y) through the scale transform.
func (s *ImageSurface) DrawSurface(src Surface, x, y float64) {
	if s.closed || src == nil {
		return
	}
	pix := pixelsOf(src)
	if pix == nil || pix.Rect.Empty() || s.img.Rect.Empty() {
		return
	}
	img, dst := rawView(pix), rawView(s.img)

	if s.scaleX == 1 && s.scaleY == 1 && x == math.Trunc(x) && y == math.Trunc(y) {
		xdraw.Copy(dst, image.Pt(int(x), int(y)), img, img.Bounds(), xdraw.Src, nil)
		return
	}

	// The interpolator samples at destination pixel centres; the
	// translation below moves that sample to the cell's top-left corner.
	s2d := f64.Aff3{
		s.scaleX, 0, s.scaleX*x + 0.5 - sampleBias*s.scaleX,
		0, s.scaleY, s.scaleY*y + 0.5 - sampleBias*s.scaleY,
	}
	xdraw.NearestNeighbor.Transform(dst, s2d, img, img.Bounds(), xdraw.Src, nil)
}

// StrokeLine strokes the segment (x1, y1)-(x2, y2) with source-over
// compositing. Zero-length segments and non-positive widths draw nothing.
func (s *ImageSurface) StrokeLine(x1, y1, x2, y2 float64, style StrokeStyle) {
	if s.closed || s.img.Rect.Empty() || style.Width <= 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || math.IsNaN(length) {
		return
	}
	ux, uy := dx/length, dy/length
	half := style.Width / 2

	if style.Cap == LineCapSquare {
		x1, y1 = x1-ux*half, y1-uy*half
		x2, y2 = x2+ux*half, y2+uy*half
	}

	// Normal offset to the stroke outline.
	nx, ny := -uy*half, ux*half

	w, h := s.Width(), s.Height()
	if s.rasterizer == nil {
		s.rasterizer = vector.NewRasterizer(w, h)
	} else {
		s.rasterizer.Reset(w, h)
	}
	z := s.rasterizer
	z.DrawOp = draw.Src
	z.MoveTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x2+nx), float32(y2+ny))
	z.LineTo(float32(x2-nx), float32(y2-ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.ClosePath()

	if s.coverage == nil || s.coverage.Rect != s.img.Rect {
		s.coverage = image.NewAlpha(s.img.Rect)
	}
	z.Draw(s.coverage, s.coverage.Rect, image.Opaque, image.Point{})

	// Uncovered pixels are skipped, so they keep their exact values.
	src := style.Color
	if src == nil {
		src = color.Black
	}
	draw.DrawMask(s.img, s.img.Rect, image.NewUniform(src), image.Point{}, s.coverage, image.Point{}, draw.Over)
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	if s.closed {
		return nil
	}

	result := image.NewNRGBA(s.img.Rect)
	copy(result.Pix, s.img.Pix)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.rasterizer = nil
	s.coverage = nil
	return nil
}

// Image returns the underlying image.NRGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// pixelsOf returns the pixels of src without copying when possible.
func pixelsOf(src Surface) *image.NRGBA {
	if is, ok := src.(*ImageSurface); ok {
		if is.closed {
			return nil
		}
		return is.img
	}
	return src.Snapshot()
}

// rawView shares the bytes of img as an *image.RGBA so that whole-pixel
// moves hit the byte-copy paths of x/image/draw. Use it only with the Src
// operator and nearest-neighbour sampling: those never blend, so the
// channels are never read as premultiplied.
func rawView(img *image.NRGBA) *image.RGBA {
	return &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
}

var _ Surface = (*ImageSurface)(nil)
