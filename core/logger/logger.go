// Package logger records every command the shell dispatches as newline
// delimited JSON.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Logger appends one entry per dispatched command to its destination.
type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

// New returns a Logger writing JSON lines to w. If w is also an io.Closer,
// Close closes it.
func New(w io.Writer) *Logger {
	out := &Logger{
		slog: slog.New(slog.NewJSONHandler(w, nil)),
	}
	if closer, ok := w.(io.Closer); ok {
		out.closer = closer
	}
	return out
}

// Nop returns a Logger that records nothing.
func Nop() *Logger {
	return New(io.Discard)
}

// Builtin records an in-process command.
func (l *Logger) Builtin(argv []string, duration time.Duration) {
	l.slog.Info("builtin",
		slog.String("command", argv[0]),
		slog.Any("argv", argv),
		slog.Duration("duration", duration))
}

// Launch records an external command that ran to termination. exitCode is
// -1 when the child was killed by a signal.
func (l *Logger) Launch(argv []string, exitCode int, duration time.Duration) {
	l.slog.Info("launch",
		slog.String("command", argv[0]),
		slog.Any("argv", argv),
		slog.Int("exit_code", exitCode),
		slog.Duration("duration", duration))
}

// LaunchFailed records an external command that could not be started.
func (l *Logger) LaunchFailed(argv []string, err error) {
	l.slog.Error("launch failed",
		slog.String("command", argv[0]),
		slog.Any("argv", argv),
		slog.String("error", err.Error()))
}

func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
