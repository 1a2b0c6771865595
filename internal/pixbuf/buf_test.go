package pixbuf

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"regular", 20, 10, 20, 10},
		{"zero", 0, 0, 0, 0},
		{"negative", -3, 5, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height)
			if err != nil {
				t.Fatalf("New(%d, %d) error = %v", tt.width, tt.height, err)
			}
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
			if len(b.Data()) != tt.wantW*tt.wantH*BytesPerPixel {
				t.Errorf("len(Data()) = %d, want %d", len(b.Data()), tt.wantW*tt.wantH*BytesPerPixel)
			}
			if !b.IsBlank() {
				t.Error("new buffer is not blank")
			}
		})
	}
}

func mustNew(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", w, h, err)
	}
	return b
}

func TestNewTooLarge(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"wide", MaxDimension + 1, 1},
		{"tall", 1, MaxDimension + 1},
		{"area", MaxDimension, MaxDimension},
		{"huge", math.MaxInt32, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height)
			if !errors.Is(err, ErrTooLarge) {
				t.Errorf("New(%d, %d) error = %v, want ErrTooLarge", tt.width, tt.height, err)
			}
			if b != nil {
				t.Error("New returned a buffer alongside an error")
			}
		})
	}

	// The per-side limit itself is allowed while the area stays in range.
	if err := CheckSize(MaxDimension, 1); err != nil {
		t.Errorf("CheckSize(MaxDimension, 1) error = %v", err)
	}
}

func TestOffset(t *testing.T) {
	b := mustNew(t, 200, 100)
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{0, 1, 800},
		{10, 10, 4 * (10 + 10*200)},
		{199, 99, 4 * (199 + 99*200)},
		{-1, 0, -1},
		{200, 0, -1},
		{0, 100, -1},
	}
	for _, tt := range tests {
		if got := b.Offset(tt.x, tt.y); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSetAt(t *testing.T) {
	b := mustNew(t, 4, 4)
	if err := b.Set(2, 1, 255, 128, 64, 32); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	r, g, bl, a := b.At(2, 1)
	if r != 255 || g != 128 || bl != 64 || a != 32 {
		t.Errorf("At(2, 1) = (%d, %d, %d, %d), want (255, 128, 64, 32)", r, g, bl, a)
	}

	// The neighbour before the written pixel must be untouched.
	if r, g, bl, a := b.At(1, 1); r|g|bl|a != 0 {
		t.Errorf("At(1, 1) = (%d, %d, %d, %d), want zero", r, g, bl, a)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := mustNew(t, 10, 10)
	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		if err := b.Set(c.x, c.y, 255, 0, 0, 255); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
	}
	if !b.IsBlank() {
		t.Error("out-of-bounds writes modified the buffer")
	}
}

func TestImageSharesMemory(t *testing.T) {
	b := mustNew(t, 3, 2)
	_ = b.Set(1, 1, 1, 2, 3, 4)

	img := b.Image()
	if got := img.NRGBAAt(1, 1); got.R != 1 || got.G != 2 || got.B != 3 || got.A != 4 {
		t.Errorf("Image().NRGBAAt(1, 1) = %v, want {1 2 3 4}", got)
	}

	clone := b.Clone()
	clone.Pix[0] = 99
	if b.Data()[0] != 0 {
		t.Error("Clone() aliases buffer memory")
	}
}
