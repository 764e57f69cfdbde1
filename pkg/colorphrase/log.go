package colorphrase

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(zerolog.Nop())
}

// SetLogger sets the logger the package reports formatting events to.
// The package is silent until a logger is set.
func SetLogger(l zerolog.Logger) {
	pkgLogger.Store(&l)
}

func currentLogger() *zerolog.Logger {
	return pkgLogger.Load()
}
