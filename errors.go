package canvas2d

import "errors"

// Common errors returned by Canvas operations. Errors carrying detail wrap
// one of these; compare with errors.Is.
var (
	// ErrInvalidConfig is returned for a missing configuration, a
	// non-positive or non-finite supersampling factor, unknown style
	// properties and other malformed settings.
	ErrInvalidConfig = errors.New("canvas2d: invalid configuration")

	// ErrOutOfBounds is returned when pixel coordinates fall outside the
	// supersampled buffer rectangle.
	ErrOutOfBounds = errors.New("canvas2d: pixel out of bounds")

	// ErrNotAttached is returned by drawing operations issued before Attach.
	ErrNotAttached = errors.New("canvas2d: canvas is not attached to a host")

	// ErrAlreadyAttached is returned when Attach is called twice.
	ErrAlreadyAttached = errors.New("canvas2d: canvas is already attached")

	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas2d: canvas is closed")

	// ErrNilHost is returned when a nil host is passed to Attach.
	ErrNilHost = errors.New("canvas2d: nil host")
)
