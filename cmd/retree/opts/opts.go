package opts

import (
	"io"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Stdout receives the per-file diagnostics and listings
	Stdout io.Writer
	// Stderr receives structured logs
	Stderr io.Writer
	// Debug lowers the log level to debug
	Debug bool
}
