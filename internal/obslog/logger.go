// Package obslog configures the structured logger used at the CLI
// boundary. internal/stego and internal/raster never log directly — they
// return typed errors; only the CLI layer logs, at the edges of an
// operation (start, success, typed-error kind).
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing human-readable console output, or
// newline-delimited JSON when format is "json" (suited to log aggregation
// rather than a terminal).
func New(format string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if format == "json" {
		w = os.Stderr
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
