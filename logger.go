package canvas2d

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Its handler reports every level disabled,
// so log calls return before formatting their arguments.
var silent = slog.New(slog.DiscardHandler)

// logger holds the configured logger; nil means silent.
var logger atomic.Pointer[slog.Logger]

// SetLogger routes canvas2d diagnostics to l. Pass nil to silence them
// again, which is also the initial state. SetLogger may be called from any
// goroutine, including while canvases are logging.
//
// Records emitted by canvas2d, by level:
//   - [slog.LevelDebug]: "canvas2d: buffer allocated" with the logical and
//     physical sizes and the buffer length in bytes, and "canvas2d: host
//     event" for each geometry notification
//   - [slog.LevelInfo]: "canvas2d: attached" and "canvas2d: closed"
//   - [slog.LevelWarn]: "canvas2d: ignoring unknown host event",
//     "canvas2d: host geometry rejected" and "canvas2d: surface release
//     failed"
//
// Example:
//
//	canvas2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger canvas2d writes to. It never returns nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
