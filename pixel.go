package canvas2d

import "github.com/gogpu/canvas2d/host"

// Pixel is a single RGBA pixel write.
//
// X and Y are physical (supersampled) coordinates in
// [0, Width()) × [0, Height()).
type Pixel struct {
	X, Y       int
	R, G, B, A uint8
}

// Line is a straight segment in logical (visible surface) coordinates.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// ResizeEvent describes the canvas geometry after it reacted to a host
// lifecycle notification.
type ResizeEvent struct {
	// Kind is the host notification that triggered the recomputation.
	Kind host.EventKind

	LogicalWidth   int
	LogicalHeight  int
	PhysicalWidth  int
	PhysicalHeight int
	Supersampling  float64
}
