// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return nil }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

// mockSource implements Source.
type mockSource struct {
	img *image.NRGBA
}

func (m *mockSource) Snapshot() *image.NRGBA { return m.img }

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	return img
}

func TestNew(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilProvider) {
		t.Errorf("New(nil) error = %v, want ErrNilProvider", err)
	}

	prov := &mockProvider{format: gputypes.TextureFormatRGBA8Unorm}
	p, err := New(prov)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Provider() != prov {
		t.Error("Provider() does not return the given provider")
	}
}

func TestStageRGBA(t *testing.T) {
	p, _ := New(&mockProvider{format: gputypes.TextureFormatRGBA8Unorm})

	if err := p.Stage(testImage(3, 2)); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	w, h, data := p.Frame()
	if w != 3 || h != 2 || len(data) != 3*2*4 {
		t.Fatalf("Frame() = %dx%d len %d, want 3x2 len 24", w, h, len(data))
	}
	if got := [4]byte{data[0], data[1], data[2], data[3]}; got != [4]byte{10, 20, 30, 255} {
		t.Errorf("first pixel = %v, want [10 20 30 255]", got)
	}
}

func TestStageSwizzlesForBGRA(t *testing.T) {
	for _, f := range []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb} {
		p, _ := New(&mockProvider{format: f})
		if err := p.Stage(testImage(1, 1)); err != nil {
			t.Fatal(err)
		}
		_, _, data := p.Frame()
		if got := [4]byte{data[0], data[1], data[2], data[3]}; got != [4]byte{30, 20, 10, 255} {
			t.Errorf("format %v: pixel = %v, want [30 20 10 255]", f, got)
		}
	}
}

func TestStageKeepsStraightAlpha(t *testing.T) {
	for _, f := range []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm} {
		p, _ := New(&mockProvider{format: f})
		img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 100, B: 30, A: 128})
		if err := p.Stage(img); err != nil {
			t.Fatal(err)
		}
		want := [4]byte{10, 100, 30, 128}
		if isBGRA(f) {
			want = [4]byte{30, 100, 10, 128}
		}
		_, _, data := p.Frame()
		if got := [4]byte{data[0], data[1], data[2], data[3]}; got != want {
			t.Errorf("format %v: pixel = %v, want %v", f, got, want)
		}
	}
}

func TestStageDoesNotAliasSource(t *testing.T) {
	p, _ := New(&mockProvider{})
	img := testImage(2, 2)
	if err := p.Stage(img); err != nil {
		t.Fatal(err)
	}
	img.Pix[0] = 99
	if _, _, data := p.Frame(); data[0] != 10 {
		t.Errorf("staged frame changed with its source: %d", data[0])
	}
}

func TestStageSubImage(t *testing.T) {
	p, _ := New(&mockProvider{})
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 7, A: 255})
	img.SetNRGBA(2, 2, color.NRGBA{G: 8, A: 255})

	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	if err := p.Stage(sub); err != nil {
		t.Fatal(err)
	}
	w, h, data := p.Frame()
	if w != 2 || h != 2 {
		t.Fatalf("Frame() size = %dx%d, want 2x2", w, h)
	}
	if data[0] != 7 {
		t.Errorf("top-left R = %d, want 7", data[0])
	}
	if off := (1*2 + 1) * 4; data[off+1] != 8 {
		t.Errorf("bottom-right G = %d, want 8", data[off+1])
	}
}

func TestStageTracksSizeChange(t *testing.T) {
	p, _ := New(&mockProvider{})
	_ = p.Stage(testImage(2, 2))
	p.sizeChanged = false

	_ = p.Stage(testImage(2, 2))
	if p.sizeChanged {
		t.Error("same-size frame marked as resize")
	}
	_ = p.Stage(testImage(4, 2))
	if !p.sizeChanged {
		t.Error("resized frame not marked as resize")
	}
}

func TestPresentErrors(t *testing.T) {
	p, _ := New(&mockProvider{})

	if err := p.Present(nil, 0, 0); !errors.Is(err, ErrNilDrawer) {
		t.Errorf("Present(nil) error = %v, want ErrNilDrawer", err)
	}
	if err := p.Stage(nil); !errors.Is(err, ErrNoFrame) {
		t.Errorf("Stage(nil) error = %v, want ErrNoFrame", err)
	}
	if err := p.Render(nil, nil, 0, 0); !errors.Is(err, ErrNoFrame) {
		t.Errorf("Render(nil source) error = %v, want ErrNoFrame", err)
	}
	if err := p.Render(nil, &mockSource{img: testImage(1, 1)}, 0, 0); !errors.Is(err, ErrNilDrawer) {
		t.Errorf("Render(nil drawer) error = %v, want ErrNilDrawer", err)
	}
}

func TestClose(t *testing.T) {
	p, _ := New(&mockProvider{})
	_ = p.Stage(testImage(1, 1))

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if p.Provider() != nil {
		t.Error("Provider() after Close should be nil")
	}
	if err := p.Stage(testImage(1, 1)); !errors.Is(err, ErrPresenterClosed) {
		t.Errorf("Stage after Close error = %v, want ErrPresenterClosed", err)
	}
	if err := p.Present(nil, 0, 0); !errors.Is(err, ErrPresenterClosed) {
		t.Errorf("Present after Close error = %v, want ErrPresenterClosed", err)
	}
	if err := p.Render(nil, &mockSource{}, 0, 0); !errors.Is(err, ErrPresenterClosed) {
		t.Errorf("Render after Close error = %v, want ErrPresenterClosed", err)
	}
}

// mockDestroyable records destruction of a texture stand-in.
type mockDestroyable struct {
	destroyed bool
}

func (m *mockDestroyable) Destroy() { m.destroyed = true }

func TestCloseDestroysTextures(t *testing.T) {
	p, _ := New(&mockProvider{})
	cur, old := &mockDestroyable{}, &mockDestroyable{}
	p.texture, p.oldTexture = cur, old

	_ = p.Close()
	if !cur.destroyed || !old.destroyed {
		t.Errorf("destroyed (current, old) = (%v, %v), want both", cur.destroyed, old.destroyed)
	}
}
