// Command canvas2ddemo demonstrates the canvas2d supersampled canvas.
//
// It attaches a canvas to a host from the registry, paints a buffered
// gradient with direct pixels and lines on top, and writes the visible
// surface as PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/host"
)

func main() {
	var (
		width         = flag.Int("width", 320, "logical canvas width")
		height        = flag.Int("height", 240, "logical canvas height")
		supersampling = flag.Float64("supersampling", 2, "supersampling factor")
		hostName      = flag.String("host", host.DefaultName, "host to attach to (one of: "+strings.Join(host.Names(), ", ")+")")
		configPath    = flag.String("config", "", "TOML or YAML config file")
		canvasStyle   = flag.String("canvas-style", "", "inline CSS for the canvas element")
		resize        = flag.String("resize", "", "simulate a viewport change to WxH before flushing")
		output        = flag.String("output", "canvas2d.png", "output file")
		verbose       = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		canvas2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts, err := buildOptions(*configPath, *canvasStyle, *supersampling)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	c, err := canvas2d.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	h, err := host.New(*hostName, host.Options{Width: float64(*width), Height: float64(*height)})
	if err != nil {
		log.Fatalf("Failed to create host: %v", err)
	}

	if err := c.Attach(h); err != nil {
		log.Fatalf("Failed to attach canvas: %v", err)
	}

	// Every geometry change reallocates the buffer, so the scene is
	// redrawn from the subscription.
	c.OnResize(func(ev canvas2d.ResizeEvent) {
		log.Printf("Viewport %s: %dx%d (buffer %dx%d)",
			ev.Kind, ev.LogicalWidth, ev.LogicalHeight, ev.PhysicalWidth, ev.PhysicalHeight)
		if err := drawScene(c); err != nil {
			log.Fatalf("Failed to draw: %v", err)
		}
	})

	if err := drawScene(c); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if *resize != "" {
		w, hh, err := parseSize(*resize)
		if err != nil {
			log.Fatalf("Invalid -resize: %v", err)
		}
		resizer, ok := h.(interface{ Resize(w, h float64) })
		if !ok {
			log.Fatalf("Host does not support simulated resizes")
		}
		resizer.Resize(w, hh)
	}

	if err := savePNG(c, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	lw, lh := c.LogicalSize()
	log.Printf("Canvas saved to %s (%dx%d, supersampling %.2g)\n", *output, lw, lh, c.Supersampling())
}

func buildOptions(configPath, inlineStyle string, factor float64) ([]canvas2d.Option, error) {
	var opts []canvas2d.Option
	if configPath != "" {
		cfg, err := canvas2d.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if opts, err = cfg.Options(); err != nil {
			return nil, err
		}
	}

	// The flag default applies only without a config file; an explicit
	// flag always wins.
	explicit := configPath == ""
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "supersampling" {
			explicit = true
		}
	})
	if explicit {
		opts = append(opts, canvas2d.WithSupersampling(factor))
	}

	if inlineStyle != "" {
		style, err := canvas2d.ParseStyle(inlineStyle)
		if err != nil {
			return nil, err
		}
		opts = append(opts, canvas2d.WithCanvasStyle(style))
	}
	return opts, nil
}

// drawScene paints a gradient through the buffer, then direct pixels and
// lines on top of the flushed result.
func drawScene(c *canvas2d.Canvas) error {
	if err := c.ClearBuffer(); err != nil {
		return err
	}
	w, h := c.Width(), c.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := canvas2d.Pixel{
				X: x, Y: y,
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: 255,
			}
			if err := c.DrawBufferedPixel(p); err != nil {
				return err
			}
		}
	}
	if err := c.FlushBuffer(); err != nil {
		return err
	}

	if w == 0 || h == 0 {
		return nil
	}

	// Direct pixels: a white dotted border in physical coordinates.
	for x := 0; x < w; x += 4 {
		for _, y := range []int{0, h - 1} {
			if err := c.DrawPixel(canvas2d.Pixel{X: x, Y: y, R: 255, G: 255, B: 255, A: 255}); err != nil {
				return err
			}
		}
	}

	lw, lh := c.LogicalSize()
	fw, fh := float64(lw), float64(lh)
	if err := c.DrawLine(canvas2d.Line{X1: 0, Y1: 0, X2: fw, Y2: fh}); err != nil {
		return err
	}
	return c.DrawLine(canvas2d.Line{X1: 0, Y1: fh, X2: fw, Y2: 0})
}

func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, err
	}
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func savePNG(c *canvas2d.Canvas, path string) error {
	img := c.Snapshot()
	if img == nil {
		return fmt.Errorf("canvas is not attached")
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
