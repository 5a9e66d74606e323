package svgir

import (
	"log/slog"
	"sync/atomic"
)

// silent is the package logger until SetLogger installs another one.
var silent = slog.New(slog.DiscardHandler)

// current holds the package logger. Conversions read it while SetLogger
// may replace it from another goroutine.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs the logger that conversions fall back to when
// Options.Logger is nil. A nil l restores the silent default.
//
// Records svgir emits:
//   - [slog.LevelWarn]: an element was left out of the tree (bad image
//     size, missing or unloadable href, bad transform, broken filter
//     reference or filter region)
//   - [slog.LevelDebug]: a filter primitive was left out of its filter,
//     with the reason in the "reason" attribute
//
// To see everything on stderr:
//
//	svgir.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or the silent
// default. It never returns nil.
func Logger() *slog.Logger {
	return current.Load()
}
