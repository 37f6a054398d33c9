// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"
)

var (
	// rawStderr writes straight to file descriptor 2, so that reassigning
	// os.Stderr or installing a logger cannot redirect the fallback channel.
	rawStderr io.Writer = os.NewFile(uintptr(syscall.Stderr), "/dev/stderr")

	std = NewDispatcher()

	// exit is swapped in tests that must not stop the test binary.
	exit = os.Exit
)

// exitCodeUnrecoverable is the status of a process stopped by a double failure.
const exitCodeUnrecoverable = 2

// UnrecoverableError is the diagnostic produced when both the active logger
// and the fallback channel failed to record a message.
type UnrecoverableError struct {
	Level       Level
	Message     string
	DeliveryErr error
	FallbackErr error
}

func (e *UnrecoverableError) Error() string {
	return fmt.Sprintf("fallback logging failed after logging failed: original log {level: %s, msg: %s}\nlogging error: %s\nfallback error: %s",
		e.Level, e.Message, e.DeliveryErr, e.FallbackErr)
}

func (e *UnrecoverableError) Unwrap() []error {
	return []error{e.DeliveryErr, e.FallbackErr}
}

// Dispatcher delivers messages to the logger of an execution context and
// handles the failures of that logger.
type Dispatcher struct {
	fallback  io.Writer
	terminate func(*UnrecoverableError)
}

// DispatcherOption customizes a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithFallback sets the channel that receives diagnostics of failed deliveries.
func WithFallback(w io.Writer) DispatcherOption {
	return func(d *Dispatcher) {
		d.fallback = w
	}
}

// WithTerminate sets the function called when the fallback channel fails too.
// It must not return in production code.
func WithTerminate(terminate func(*UnrecoverableError)) DispatcherOption {
	return func(d *Dispatcher) {
		d.terminate = terminate
	}
}

// NewDispatcher returns a Dispatcher that falls back to the raw standard error
// and exits the process on double failure, unless configured otherwise.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		fallback:  rawStderr,
		terminate: exitTerminate,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// exitTerminate cannot be recovered from: it makes a last attempt to print the
// diagnostic on the raw standard error and stops the process.
func exitTerminate(err *UnrecoverableError) {
	_, _ = io.WriteString(rawStderr, err.Error()+"\n")
	exit(exitCodeUnrecoverable)
}

// Log delivers msg at level to the logger active in ctx. It never returns an
// error: a failed delivery is reported once on the fallback channel.
func (d *Dispatcher) Log(ctx context.Context, level Level, msg string) {
	err := slotFromContext(ctx).load().Log(level, msg)
	if err == nil {
		return
	}

	d.fallbackLog(level, msg, err)
}

func (d *Dispatcher) fallbackLog(level Level, msg string, deliveryErr error) {
	_, err := fmt.Fprintf(d.fallback, "Error logging {level: %s, msg: %s}: %s\n", level, msg, deliveryErr)
	if err == nil {
		return
	}

	d.terminate(&UnrecoverableError{
		Level:       level,
		Message:     msg,
		DeliveryErr: deliveryErr,
		FallbackErr: err,
	})
}

// Log delivers msg at level to the logger active in ctx.
func Log(ctx context.Context, level Level, msg string) {
	std.Log(ctx, level, msg)
}
