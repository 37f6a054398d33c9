// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strings"
)

const multiSinkName = "multi"

// Make sure that MultiLogger is a Logger.
var _ Logger = &MultiLogger{}

// MultiLogger delivers every message to all of its loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a MultiLogger over loggers; nil entries are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	filtered := make([]Logger, 0, len(loggers))
	for _, logger := range loggers {
		if logger != nil {
			filtered = append(filtered, logger)
		}
	}

	return &MultiLogger{loggers: filtered}
}

// Log tries every logger even after a failure, and joins the failures into a
// single *DeliveryError.
func (m *MultiLogger) Log(level Level, msg string) error {
	var errs []error
	for _, logger := range m.loggers {
		if err := logger.Log(level, msg); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return &DeliveryError{Sink: multiSinkName, Err: joinedError(errs)}
}

// SetLevel forwards the level to every logger that supports it.
func (m *MultiLogger) SetLevel(level Level) {
	for _, logger := range m.loggers {
		if leveled, ok := logger.(interface{ SetLevel(Level) }); ok {
			leveled.SetLevel(level)
		}
	}
}

// Named returns a MultiLogger whose loggers are named children of the current
// ones. Loggers that cannot be named are shared as they are.
func (m *MultiLogger) Named(name string) Logger {
	named := make([]Logger, 0, len(m.loggers))
	for _, logger := range m.loggers {
		if namer, ok := logger.(NamedLogger); ok {
			named = append(named, namer.Named(name))
			continue
		}
		named = append(named, logger)
	}
	return &MultiLogger{loggers: named}
}

// joinedError keeps the failures on one line, since the fallback channel
// writes a single line per failed message.
type joinedError []error

func (j joinedError) Error() string {
	messages := make([]string, 0, len(j))
	for _, err := range j {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (j joinedError) Unwrap() []error {
	return j
}
