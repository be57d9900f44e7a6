package raster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records. Enabled returns false
// so the caller skips message formatting entirely, making disabled
// logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by package raster. By default
// the package produces no log output. Pass nil to restore the silent
// default.
//
// The package logs only at [slog.LevelDebug]: for no-op conditions
// that are otherwise invisible (unsupported topology, a released
// Image, degenerate triangles, empty post-clip bounding boxes) —
// useful when tuning submitted geometry — and one summary record per
// Render call. The hot per-pixel path never logs.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger for package raster.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
