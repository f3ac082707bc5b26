// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// DebugLogger is used by library packages for tracing. It discards
// everything unless the binary is built with the "debug" tag, see
// enable-debug.go
type DebugLogger struct {
	zl *zerolog.Logger
}

var debugLogger = DebugLogger{zl: newDebugZerolog(io.Discard, zerolog.Disabled)}

func newDebugZerolog(out io.Writer, level zerolog.Level) *zerolog.Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()

	return &zl
}

// NewDebugLogger returns a instance of DebugLogger
func NewDebugLogger() DebugLogger {
	return debugLogger
}

// Enabled reports whether debug output is turned on
func (l DebugLogger) Enabled() bool {
	return l.zl.GetLevel() != zerolog.Disabled
}

// Info wrapper around zerolog Info
func (l DebugLogger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l DebugLogger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l DebugLogger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l DebugLogger) Error() *zerolog.Event {
	return l.zl.Error()
}
