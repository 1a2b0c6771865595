// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Presentation errors.
var (
	// ErrNilProvider is returned by New when no device provider is given.
	ErrNilProvider = errors.New("present: provider cannot be nil")

	// ErrNilDrawer is returned when Present is called without a draw context.
	ErrNilDrawer = errors.New("present: draw context cannot be nil")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("present: draw context has no texture creator")

	// ErrInvalidTexture is returned when the created texture cannot be drawn.
	ErrInvalidTexture = errors.New("present: texture does not implement gpucontext.Texture")

	// ErrNoFrame is returned when Present is called before any frame was staged.
	ErrNoFrame = errors.New("present: no frame staged")

	// ErrPresenterClosed is returned when operating on a closed Presenter.
	ErrPresenterClosed = errors.New("present: presenter is closed")
)

// Source is anything that can produce a straight alpha snapshot of its
// visible pixels. *canvas2d.Canvas satisfies it.
type Source interface {
	Snapshot() *image.NRGBA
}

// textureDestroyer matches the Destroy method of host GPU textures.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads canvas frames to a GPU texture and draws that texture
// through a gpucontext.TextureDrawer.
//
// The texture is created lazily on the first Present after a frame is
// staged, updated in place while the frame size is unchanged and recreated
// when it changes.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	provider gpucontext.DeviceProvider
	swizzle  bool

	texture    any // Lazy-created host texture
	oldTexture any // Previous texture awaiting deferred destruction

	frame       []byte
	width       int
	height      int
	dirty       bool
	sizeChanged bool
	closed      bool
}

// New creates a Presenter for textures on provider's device. When the
// provider's surface format is BGRA, staged frames are swizzled to match.
func New(provider gpucontext.DeviceProvider) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Presenter{
		provider: provider,
		swizzle:  isBGRA(provider.SurfaceFormat()),
	}, nil
}

func isBGRA(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8Unorm || f == gputypes.TextureFormatBGRA8UnormSrgb
}

// Stage copies img as the next frame to present. Channel bytes are kept
// as they are, apart from the BGRA swizzle.
func (p *Presenter) Stage(img *image.NRGBA) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if img == nil {
		return ErrNoFrame
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w != p.width || h != p.height {
		p.width, p.height = w, h
		p.sizeChanged = true
	}

	n := w * h * 4
	if cap(p.frame) < n {
		p.frame = make([]byte, n)
	}
	p.frame = p.frame[:n]

	// Rows may be strided when img is a sub-image.
	for y := 0; y < h; y++ {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):][:w*4]
		dst := p.frame[y*w*4 : (y+1)*w*4]
		copy(dst, src)
		if p.swizzle {
			for i := 0; i < len(dst); i += 4 {
				dst[i], dst[i+2] = dst[i+2], dst[i]
			}
		}
	}
	p.dirty = true
	return nil
}

// Frame returns the staged frame: its size and the pixel bytes in the
// provider's surface channel order. The slice is owned by the Presenter.
func (p *Presenter) Frame() (width, height int, data []byte) {
	return p.width, p.height, p.frame
}

// Render stages src's current snapshot and presents it at (x, y).
func (p *Presenter) Render(dc gpucontext.TextureDrawer, src Source, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if src == nil {
		return ErrNoFrame
	}
	if err := p.Stage(src.Snapshot()); err != nil {
		return err
	}
	return p.Present(dc, x, y)
}

// Present uploads the staged frame if it changed and draws it at (x, y).
func (p *Presenter) Present(dc gpucontext.TextureDrawer, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if dc == nil {
		return ErrNilDrawer
	}
	if p.frame == nil {
		return ErrNoFrame
	}

	// An old texture may still be referenced by in-flight command buffers,
	// so it is only destroyed after the replacement upload has completed.
	if p.sizeChanged {
		if p.texture != nil {
			p.destroyOld()
			p.oldTexture = p.texture
			p.texture = nil
		}
		p.sizeChanged = false
	}

	if p.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		tex, err := creator.NewTextureFromRGBA(p.width, p.height, p.frame)
		if err != nil {
			return fmt.Errorf("present: NewTextureFromRGBA failed: %w", err)
		}
		// Frames carry straight alpha.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}
		p.texture = tex
		p.dirty = false
		p.destroyOld()
	} else if p.dirty {
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(p.frame); err != nil {
				return fmt.Errorf("present: texture update failed: %w", err)
			}
		}
		p.dirty = false
	}

	gpuTex, ok := p.texture.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, x, y)
}

func (p *Presenter) destroyOld() {
	if p.oldTexture == nil {
		return
	}
	if d, ok := p.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.oldTexture = nil
}

// Provider returns the device provider, or nil after Close.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Close destroys the textures owned by the Presenter.
// Close is idempotent - multiple calls are safe.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	p.destroyOld()
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
	p.frame = nil
	p.provider = nil
	return nil
}
