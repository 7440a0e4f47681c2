//go:build !logless

// Package logger provides the module-wide structured logger used by the
// trainer, synthesizer, and CLI for progress and diagnostic output. The
// logless build tag swaps this for a no-op implementation with the same
// method surface, so callers never branch on whether logging is compiled in.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
