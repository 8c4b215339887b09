// Package logging sets up the structured log file. The UI owns the terminal,
// so records go to a rotated file and never to stderr.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Debug      bool
}

// Logger is a slog.Logger whose level can be switched at runtime.
type Logger struct {
	*slog.Logger
	level  *slog.LevelVar
	closer io.Closer
}

// New opens a size-rotated log file at opts.Path.
func New(opts Options) *Logger {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	l := NewWriter(w, opts.Debug)
	l.closer = w
	return l
}

// NewWriter logs text records to w.
func NewWriter(w io.Writer, debug bool) *Logger {
	level := new(slog.LevelVar)
	l := &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		level:  level,
	}
	l.SetDebug(debug)
	return l
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, false)
}

// SetDebug switches between debug and info level.
func (l *Logger) SetDebug(enabled bool) {
	if enabled {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debugging reports whether debug records are written.
func (l *Logger) Debugging() bool {
	return l.level.Level() <= slog.LevelDebug
}

// Component returns a logger tagged with the component name.
func (l *Logger) Component(name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
