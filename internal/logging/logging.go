// Package logging holds the harness-wide zerolog logger.
//
// The generator packages never log; only the fixture harness and the refgen
// command do.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Logger()

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetLogger replaces the shared logger.
func SetLogger(l zerolog.Logger) {
	log = l
}

// Setup configures the shared logger to write to w in the given format
// ("console" or "json") at the given level ("trace" ... "disabled").
func Setup(w io.Writer, format, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}

	switch strings.ToLower(format) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000", NoColor: !isTerminal(w)}
	case "json":
	default:
		return errors.Errorf("unknown log format %q", format)
	}

	log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
