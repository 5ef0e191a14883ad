// Package obslog wires the sbom CLI's structured logging, kept out of
// the core sbom package entirely — the core performs no logging of its
// own (see the engine's error handling design).
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger the sbom CLI under cmd/ writes
// through.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetVerbose switches Logger between debug and info level, called
// from the CLI search subcommand's --verbose flag.
func SetVerbose(verbose bool) {
	if verbose {
		Logger = Logger.Level(zerolog.DebugLevel)
		return
	}
	Logger = Logger.Level(zerolog.InfoLevel)
}
