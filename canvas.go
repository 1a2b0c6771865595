package canvas2d

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/canvas2d/host"
	"github.com/gogpu/canvas2d/internal/notify"
	"github.com/gogpu/canvas2d/internal/pixbuf"
	"github.com/gogpu/canvas2d/surface"
)

// MaxDimension is the largest physical width or height a canvas accepts.
// The physical area is further limited to 1<<28 pixels (1 GiB of RGBA).
// Geometry beyond either limit is rejected with ErrInvalidConfig.
const MaxDimension = pixbuf.MaxDimension

type lifecycle uint8

const (
	stateCreated lifecycle = iota
	stateAttached
	stateClosed
)

// Canvas is a supersampled raster canvas.
//
// It owns a visible surface sized to the host container, an offscreen
// surface and a pixel buffer both sized to the container multiplied by the
// supersampling factor. Pixels can be written straight to the visible
// surface (DrawPixel) or staged in the buffer (DrawBufferedPixel) and made
// visible with FlushBuffer, which downsamples through the offscreen surface.
//
// A Canvas goes through two phases: New returns an inert canvas, Attach
// binds it to a host and performs every geometry-dependent allocation.
// Drawing before Attach fails with ErrNotAttached.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	opts          options
	supersampling float64

	host      host.Host
	visible   surface.Surface
	offscreen surface.Surface

	// scratch is the reusable 1×1 pixel for DrawPixel
	scratch *image.NRGBA
	buf     *pixbuf.Buffer

	// logical size, as reported by the host
	width  int
	height int
	// physical size, logical size times the supersampling factor
	pw, ph int

	unsubscribe func()
	resize      notify.List[ResizeEvent]
	state       lifecycle
}

// New creates an unattached Canvas.
//
// Returns an error wrapping ErrInvalidConfig if any option is invalid.
func New(opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &Canvas{
		opts:          o,
		supersampling: o.supersampling,
	}, nil
}

// NewFromConfig creates an unattached Canvas from a Config.
// A nil config is rejected with ErrInvalidConfig.
func NewFromConfig(cfg *Config) (*Canvas, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...)
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded options).
func MustNew(opts ...Option) *Canvas {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Attach binds the canvas to h: it creates the visible and offscreen
// surfaces, applies the configured styles, sizes everything from the
// host geometry and subscribes to host lifecycle notifications.
//
// Host geometry whose physical size exceeds MaxDimension or the area limit
// is rejected with ErrInvalidConfig. On failure the canvas stays unattached
// and may be attached again.
func (c *Canvas) Attach(h host.Host) error {
	switch c.state {
	case stateClosed:
		return ErrCanvasClosed
	case stateAttached:
		return ErrAlreadyAttached
	}
	if h == nil {
		return ErrNilHost
	}

	visible, err := h.NewSurface()
	if err != nil {
		return fmt.Errorf("canvas2d: create visible surface: %w", err)
	}
	offscreen, err := h.NewSurface()
	if err != nil {
		_ = visible.Close()
		return fmt.Errorf("canvas2d: create offscreen surface: %w", err)
	}

	if err := applyStyles(h, c.opts); err != nil {
		_ = visible.Close()
		_ = offscreen.Close()
		return err
	}

	c.host = h
	c.visible = visible
	c.offscreen = offscreen
	if err := c.recompute(c.supersampling); err != nil {
		_ = visible.Close()
		_ = offscreen.Close()
		c.host, c.visible, c.offscreen = nil, nil, nil
		return err
	}
	c.scratch = image.NewNRGBA(image.Rect(0, 0, 1, 1))
	c.state = stateAttached
	c.unsubscribe = h.Subscribe(c.handleHostEvent)

	Logger().Info("canvas2d: attached",
		"logical", fmt.Sprintf("%dx%d", c.width, c.height),
		"supersampling", c.supersampling)
	return nil
}

func applyStyles(h host.Host, o options) error {
	if len(o.canvasStyle) > 0 {
		if err := h.ApplyStyle(host.TargetCanvas, o.canvasStyle.Clone()); err != nil {
			return fmt.Errorf("canvas2d: apply canvas style: %w", err)
		}
	}
	container := o.containerStyle
	if container == nil {
		container = DefaultContainerStyle()
	}
	if err := h.ApplyStyle(host.TargetContainer, container.Clone()); err != nil {
		return fmt.Errorf("canvas2d: apply container style: %w", err)
	}
	return nil
}

// SetSupersampling changes the supersampling factor and, when attached,
// re-derives every dimension from the current host geometry: the visible
// surface is resized to the logical size with a 1/factor transform, the
// buffer is reallocated blank and the offscreen surface is resized to the
// physical size. Before Attach the factor is recorded for Attach to use.
//
// Calling it again with the same factor and unchanged host geometry yields
// the same dimensions and a blank buffer. A factor that would make the
// physical size exceed MaxDimension or the area limit is rejected with
// ErrInvalidConfig and nothing changes. Returns the canvas for chaining.
func (c *Canvas) SetSupersampling(factor float64) (*Canvas, error) {
	if c.state == stateClosed {
		return c, ErrCanvasClosed
	}
	if err := validateSupersampling(factor); err != nil {
		return c, err
	}
	if c.state == stateAttached {
		if err := c.recompute(factor); err != nil {
			return c, err
		}
	}
	c.supersampling = factor
	return c, nil
}

// recompute re-derives all geometry from the host with the given factor
// and reallocates. Nothing is modified when the geometry is rejected.
func (c *Canvas) recompute(factor float64) error {
	w, h := c.host.Bounds().Size()
	pw, ph, err := physicalSize(w, h, factor)
	if err != nil {
		return err
	}
	buf, err := pixbuf.New(pw, ph)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.width, c.height = w, h
	c.pw, c.ph = pw, ph
	c.buf = buf

	c.visible.SetSize(w, h)
	c.visible.SetScale(1/factor, 1/factor)
	c.offscreen.SetSize(pw, ph)

	Logger().Debug("canvas2d: buffer allocated",
		"logical", fmt.Sprintf("%dx%d", w, h),
		"physical", fmt.Sprintf("%dx%d", pw, ph),
		"bytes", len(buf.Data()))
	return nil
}

// physicalSize scales a logical size by factor. The product is checked in
// floating point so that huge factors cannot wrap the integer conversion.
func physicalSize(w, h int, factor float64) (pw, ph int, err error) {
	if err := pixbuf.CheckSize(w, h); err != nil {
		return 0, 0, fmt.Errorf("%w: logical size %dx%d: %w", ErrInvalidConfig, w, h, err)
	}
	fw, fh := float64(w)*factor, float64(h)*factor
	if fw > MaxDimension || fh > MaxDimension {
		return 0, 0, fmt.Errorf("%w: %dx%d at supersampling %g exceeds %d pixels per side",
			ErrInvalidConfig, w, h, factor, MaxDimension)
	}
	pw, ph = int(fw), int(fh)
	if err := pixbuf.CheckSize(pw, ph); err != nil {
		return 0, 0, fmt.Errorf("%w: %dx%d at supersampling %g: %w", ErrInvalidConfig, w, h, factor, err)
	}
	return pw, ph, nil
}

// handleHostEvent reacts to a host lifecycle notification.
func (c *Canvas) handleHostEvent(ev host.Event) {
	if c.state != stateAttached {
		return
	}
	switch ev.Kind {
	case host.EventLayoutReady, host.EventViewportChanged:
	default:
		Logger().Warn("canvas2d: ignoring unknown host event", "kind", uint8(ev.Kind))
		return
	}

	Logger().Debug("canvas2d: host event", "kind", ev.Kind.String(),
		"width", ev.Bounds.Width, "height", ev.Bounds.Height)
	if err := c.recompute(c.supersampling); err != nil {
		Logger().Warn("canvas2d: host geometry rejected", "kind", ev.Kind.String(), "error", err)
		return
	}

	w, h := c.LogicalSize()
	c.resize.Notify(ResizeEvent{
		Kind:           ev.Kind,
		LogicalWidth:   w,
		LogicalHeight:  h,
		PhysicalWidth:  c.Width(),
		PhysicalHeight: c.Height(),
		Supersampling:  c.supersampling,
	})
}

// OnResize registers fn to run after the canvas has finished reacting to a
// host geometry notification, so the caller can redraw its scene.
// The returned function removes the subscription.
func (c *Canvas) OnResize(fn func(ResizeEvent)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return c.resize.Add(fn)
}

// Width returns the physical (supersampled) width: the logical width
// multiplied by the supersampling factor.
func (c *Canvas) Width() int {
	return c.pw
}

// Height returns the physical (supersampled) height.
func (c *Canvas) Height() int {
	return c.ph
}

// LogicalSize returns the size of the visible surface.
func (c *Canvas) LogicalSize() (width, height int) {
	return c.width, c.height
}

// Supersampling returns the current supersampling factor.
func (c *Canvas) Supersampling() float64 {
	return c.supersampling
}

// DrawPixel writes p straight onto the visible surface. The physical
// coordinates of p are divided by the supersampling factor to find the
// logical pixel. The buffer is not touched.
func (c *Canvas) DrawPixel(p Pixel) error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	if err := c.checkBounds(p.X, p.Y); err != nil {
		return err
	}

	c.scratch.Pix[0] = p.R
	c.scratch.Pix[1] = p.G
	c.scratch.Pix[2] = p.B
	c.scratch.Pix[3] = p.A

	x := int(math.Floor(float64(p.X) / c.supersampling))
	y := int(math.Floor(float64(p.Y) / c.supersampling))
	c.visible.PutPixels(c.scratch, x, y)
	return nil
}

// DrawBufferedPixel stages p in the supersampled buffer. It becomes visible
// on the next FlushBuffer.
func (c *Canvas) DrawBufferedPixel(p Pixel) error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	if err := c.buf.Set(p.X, p.Y, p.R, p.G, p.B, p.A); err != nil {
		return c.boundsError(p.X, p.Y)
	}
	return nil
}

// FlushBuffer copies the buffer onto the offscreen surface and composites
// the offscreen surface onto the visible surface, downsampling it by the
// supersampling factor. Buffered pixels replace what the visible surface
// showed, including pixels that are blank in the buffer.
func (c *Canvas) FlushBuffer() error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	c.offscreen.PutPixels(c.buf.Image(), 0, 0)
	c.visible.DrawSurface(c.offscreen, 0, 0)
	return nil
}

// ClearBuffer replaces the buffer with a blank one of the current physical
// size. Neither surface is touched.
func (c *Canvas) ClearBuffer() error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	buf, err := pixbuf.New(c.pw, c.ph)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.buf = buf
	return nil
}

// DrawLine strokes l on the visible surface in logical coordinates with the
// configured stroke color and width. The buffer is not touched.
func (c *Canvas) DrawLine(l Line) error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	c.visible.StrokeLine(l.X1, l.Y1, l.X2, l.Y2, c.opts.stroke)
	return nil
}

// Snapshot returns a copy of the visible surface, or nil when the canvas
// is not attached. Pixels are straight alpha, as written.
func (c *Canvas) Snapshot() *image.NRGBA {
	if c.state != stateAttached {
		return nil
	}
	return c.visible.Snapshot()
}

// BufferSnapshot returns a copy of the supersampled buffer, or nil when the
// canvas is not attached.
func (c *Canvas) BufferSnapshot() *image.NRGBA {
	if c.state != stateAttached {
		return nil
	}
	return c.buf.Clone()
}

// Close detaches the canvas from its host and releases both surfaces.
// After Close, drawing operations return ErrCanvasClosed.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.state == stateClosed {
		return nil
	}
	wasAttached := c.state == stateAttached
	c.state = stateClosed

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.resize.Reset()

	var errs []error
	if c.visible != nil {
		errs = append(errs, c.visible.Close())
	}
	if c.offscreen != nil {
		errs = append(errs, c.offscreen.Close())
	}
	c.visible, c.offscreen = nil, nil
	c.host = nil
	c.buf = nil
	c.scratch = nil

	if err := errors.Join(errs...); err != nil {
		Logger().Warn("canvas2d: surface release failed", "error", err)
		return fmt.Errorf("canvas2d: close: %w", err)
	}
	if wasAttached {
		Logger().Info("canvas2d: closed")
	}
	return nil
}

func (c *Canvas) checkAttached() error {
	switch c.state {
	case stateCreated:
		return ErrNotAttached
	case stateClosed:
		return ErrCanvasClosed
	}
	return nil
}

func (c *Canvas) checkBounds(x, y int) error {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return c.boundsError(x, y)
	}
	return nil
}

func (c *Canvas) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, c.Width(), c.Height())
}
