// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster surface abstraction used by canvas2d.
//
// A Surface is what the host platform hands to a canvas: a resizable grid of
// straight alpha RGBA pixels with a scale transform, pixel block writes,
// surface-to-surface compositing and a line stroke primitive. Decoupling
// the canvas from a concrete surface allows the same canvas code to work
// with:
//
//   - CPU-based rendering to an *image.NRGBA (ImageSurface)
//   - Browser canvases or GPU textures supplied by a host
//   - Mock surfaces in tests
//
// # Coordinate spaces
//
// PutPixels and StrokeLine address device pixels. DrawSurface honours the
// scale transform set with SetScale, which is how a supersampled offscreen
// surface is composited onto a smaller visible one:
//
//	visible := surface.NewImageSurface(100, 50)
//	offscreen := surface.NewImageSurface(200, 100)
//
//	visible.SetScale(0.5, 0.5)
//	visible.DrawSurface(offscreen, 0, 0) // lands on the full 100×50 area
//
// Compositing through DrawSurface and PutPixels is a copy: source pixels
// replace destination pixels. StrokeLine blends source-over.
package surface
