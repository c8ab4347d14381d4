// Package log wraps logrus behind a small structured logging interface
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogParams is a wrapper around the key-value pairs attached to log
// entries
type LogParams map[string]interface{}

// Logger implements structured logging
type Logger struct {
	entry *logrus.Entry
}

// New instantiates a new Logger writing to out at the given level.
// Unparseable levels fall back to info.
func New(out io.Writer, level string) *Logger {
	l := logrus.New()
	l.SetOutput(out)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{entry: logrus.NewEntry(l)}
}

// NewDefault returns a Logger writing to stderr at the info level
func NewDefault() *Logger {
	return New(os.Stderr, "info")
}

// With returns a Logger with the given parameters attached to every
// entry it logs
func (l *Logger) With(params LogParams) *Logger {
	fields := logrus.Fields{}
	for k, v := range params {
		fields[k] = v
	}

	return &Logger{entry: l.entry.WithFields(fields)}
}

// Debug logs a message with level debug
func (l *Logger) Debug(s string) {
	l.entry.Debug(s)
}

// Info logs a message with level info
func (l *Logger) Info(s string) {
	l.entry.Info(s)
}

// Warn logs a message with level warning
func (l *Logger) Warn(s string) {
	l.entry.Warn(s)
}

// Error logs a message with level error
func (l *Logger) Error(s string) {
	l.entry.Error(s)
}

// SetLevel sets the level of the logger. Unparseable levels are
// ignored.
func (l *Logger) SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	l.entry.Logger.SetLevel(parsed)
}
