// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
)

// Logger describes the interface that must be implemented by all loggers.
// A Logger may be installed in many execution contexts at once, so Log must be
// safe for concurrent use.
type Logger interface {
	// Log records msg at level, or returns an error describing why it could not.
	Log(level Level, msg string) error
}

// DeliveryError reports that a Logger could not record a message.
type DeliveryError struct {
	Sink string
	Err  error
}

func (e *DeliveryError) Error() string {
	if e.Sink == "" {
		return fmt.Sprintf("delivery failed: %s", e.Err)
	}
	return fmt.Sprintf("delivery to %s failed: %s", e.Sink, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Make sure that NullLogger is a Logger.
var _ Logger = NullLogger{}

// NullLogger discards every message and never fails.
type NullLogger struct{}

func (NullLogger) Log(Level, string) error {
	return nil
}
