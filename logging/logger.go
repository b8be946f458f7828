// Package logging provides the engine's outbound logging capability.
// The ordering of log lines is part of the engine's observable contract,
// so implementations must emit lines in call order.
package logging

import (
	"github.com/sirupsen/logrus"
)

// Logger is the write-only sink the engine reports battle progress to.
// It has no back-channel and is only called from the battle's single thread.
type Logger interface {
	// Log emits one line.
	Log(line string)

	// LogBlankThen emits a blank line followed by the given line.
	LogBlankThen(line string)
}

// StdLogger writes engine lines as logrus Info entries tagged with a
// component field.
type StdLogger struct {
	entry *logrus.Entry
}

// NewStdLogger creates a logger backed by the given logrus logger.
// A nil logger falls back to the logrus standard logger.
func NewStdLogger(base *logrus.Logger, component string) *StdLogger {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &StdLogger{
		entry: base.WithFields(logrus.Fields{
			"component": component,
		}),
	}
}

// Log emits one line at Info level.
func (l *StdLogger) Log(line string) {
	l.entry.Info(line)
}

// LogBlankThen emits a blank line followed by the given line.
func (l *StdLogger) LogBlankThen(line string) {
	l.entry.Info("")
	l.entry.Info(line)
}
