package swrast

import (
	"log/slog"

	"github.com/gogpu/swrast/raster"
)

// SetLogger installs the logger used for pipeline diagnostics across the
// module (the raster package owns the underlying atomic pointer, since
// it is the package every other package in this module depends on).
// Passing nil restores the silent default.
func SetLogger(l *slog.Logger) {
	raster.SetLogger(l)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return raster.Logger()
}
