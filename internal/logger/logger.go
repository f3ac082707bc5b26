// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger our internal "singleton" wrapper around zerolog allowing us
// to reconfigure every logger handed out by New at once
type Logger struct {
	zl *zerolog.Logger
}

type settings struct {
	out       io.Writer
	console   bool
	caller    bool
	timestamp bool
}

var (
	// unexported "singleton" logger
	logger  = Logger{zl: &zerolog.Logger{}}
	current settings
)

func init() {
	Reset()
}

// rebuild replaces the shared zerolog instance in place so copies of
// Logger returned earlier pick up the new settings
func rebuild() {
	out := current.out

	if current.console {
		out = zerolog.ConsoleWriter{Out: current.out, NoColor: current.out != os.Stderr}
	}

	ctx := zerolog.New(out).With()

	if current.timestamp {
		ctx = ctx.Timestamp()
	}

	if current.caller {
		ctx = ctx.Caller()
	}

	*logger.zl = ctx.Logger()
}

// New returns the internal "singleton" logger
func New() Logger {
	return logger
}

// SetGlobalLevel set level for all loggers, debug level also turns on
// caller and timestamp context
func SetGlobalLevel(level zerolog.Level) {
	if level == zerolog.DebugLevel {
		current.caller = true
		current.timestamp = true
		rebuild()
	}

	zerolog.SetGlobalLevel(level)
}

// SetWithCaller enables showing caller in log context
func SetWithCaller() {
	current.caller = true
	rebuild()
}

// SetWithTimestamp enables showing timestamp in log context
func SetWithTimestamp() {
	current.timestamp = true
	rebuild()
}

// SetGlobalLogFile sends human readable output of all loggers to f
func SetGlobalLogFile(f *os.File) {
	current.out = f
	current.console = true
	rebuild()
}

// SetOutput sends raw json output of all loggers to w
func SetOutput(w io.Writer) {
	current.out = w
	current.console = false
	rebuild()
}

// Reset resets logger to default values
func Reset() {
	current = settings{
		out:       os.Stderr,
		console:   true,
		timestamp: true,
	}

	rebuild()
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}

// Fatal wrapper around zerolog Fatal
func (l Logger) Fatal() *zerolog.Event {
	return l.zl.Fatal()
}
