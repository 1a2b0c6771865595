// Package pixbuf provides the supersampled RGBA pixel buffer used by canvas2d.
//
// A Buffer is a flat, row-major byte slice holding 4 bytes per pixel of
// straight (non-premultiplied) RGBA. Every write goes through a validated
// index so that a coordinate outside the buffer can never land on a
// neighbouring pixel.
package pixbuf

import (
	"errors"
	"fmt"
	"image"
)

// BytesPerPixel is the size of one RGBA pixel in the buffer.
const BytesPerPixel = 4

// Size limits. A buffer may be at most MaxDimension pixels along each axis
// and hold at most MaxPixels pixels.
const (
	MaxDimension = 1 << 15
	MaxPixels    = 1 << 28
)

var (
	// ErrOutOfBounds is returned when pixel coordinates are outside the buffer.
	ErrOutOfBounds = errors.New("pixbuf: coordinates out of bounds")

	// ErrTooLarge is returned when a buffer would exceed the size limits.
	ErrTooLarge = errors.New("pixbuf: dimensions too large")
)

// Buffer is a rectangular RGBA pixel buffer.
//
// The zero-size buffer is valid: it holds no pixels and rejects every write.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// New allocates a blank buffer with the given dimensions.
// Negative dimensions are treated as zero. Dimensions beyond the size
// limits are rejected with ErrTooLarge before anything is allocated.
func New(width, height int) (*Buffer, error) {
	width = max(width, 0)
	height = max(height, 0)
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// CheckSize reports whether a width × height buffer fits the size limits.
func CheckSize(width, height int) error {
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels per side", ErrTooLarge, width, height, MaxDimension)
	}
	// Both sides are at most 1<<15, so the product fits even a 32-bit int.
	if width*height > MaxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, width, height, MaxPixels)
	}
	return nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the raw pixel bytes. The slice aliases the buffer.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Offset returns the byte offset of pixel (x, y), 4*(x + y*width).
// Returns -1 if the coordinates are out of bounds.
func (b *Buffer) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return BytesPerPixel * (x + y*b.width)
}

// Set writes one pixel. Out-of-bounds writes are rejected and leave the
// buffer untouched.
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) error {
	i := b.Offset(x, y)
	if i < 0 {
		return ErrOutOfBounds
	}
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
	return nil
}

// At returns the channels of pixel (x, y), or zeros when out of bounds.
func (b *Buffer) At(x, y int) (r, g, bl, a uint8) {
	i := b.Offset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}
	return b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3]
}

// IsBlank reports whether every channel of every pixel is zero.
func (b *Buffer) IsBlank() bool {
	for _, v := range b.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Image returns an *image.NRGBA view sharing the buffer memory.
// Writes through the view are visible in the buffer and vice versa.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// Clone returns a deep copy of the buffer as an *image.NRGBA.
func (b *Buffer) Clone() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}
