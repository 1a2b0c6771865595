// Package canvas2d provides a supersampled raster canvas.
//
// # Overview
//
// A Canvas wraps a visible drawing surface supplied by a host platform and
// manages an off-screen pixel buffer at a higher (supersampled) resolution.
// Pixels can be written directly to the visible surface or staged in the
// buffer and flushed; flushing downsamples the buffer onto the visible
// surface through an offscreen compositing surface.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/canvas2d"
//	    "github.com/gogpu/canvas2d/host"
//	)
//
//	c, err := canvas2d.New(canvas2d.WithSupersampling(2))
//	if err != nil {
//	    return err
//	}
//	if err := c.Attach(host.NewHeadless(100, 50)); err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	// c.Width() == 200, c.Height() == 100
//	_ = c.DrawBufferedPixel(canvas2d.Pixel{X: 10, Y: 10, R: 255, A: 255})
//	_ = c.FlushBuffer() // logical pixel (5, 5) is now red
//
// # Coordinate Spaces
//
// Logical coordinates address the visible surface; its size is the
// container size reported by the host. Physical coordinates address the
// buffer; physical size is logical size multiplied by the supersampling
// factor and is what Width and Height return.
//
//   - DrawPixel and DrawBufferedPixel take physical coordinates.
//   - DrawLine takes logical coordinates.
//
// # Lifecycle
//
// New returns an inert canvas. Attach creates the surfaces, applies styles,
// queries the host geometry and allocates the buffer. The canvas then
// re-derives its geometry on every host notification (layout ready,
// viewport changed) and calls OnResize subscribers. Close detaches it.
//
// # Errors
//
// Every failure is returned synchronously and wraps one of the sentinel
// errors (ErrInvalidConfig, ErrOutOfBounds, ErrNotAttached, ...). Buffered
// writes are bounds-checked: an out-of-range pixel is rejected rather than
// written into a neighbouring pixel.
//
// # Configuration
//
// Options can be given programmatically (WithSupersampling, WithCanvasStyle,
// ...) or loaded from a TOML or YAML file with LoadConfig and turned into a
// canvas with NewFromConfig. Style properties are validated against a fixed
// set of layout properties before being forwarded to the host.
//
// # Logging
//
// canvas2d is silent by default. Call SetLogger with a *slog.Logger to
// receive attach, allocation and host event diagnostics.
package canvas2d
