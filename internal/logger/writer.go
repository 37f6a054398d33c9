// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

const consoleSinkName = "console"

// Options configures the loggers that render lines with hclog.
type Options struct {
	// Name is prepended to every message.
	Name string
	// Level is the minimum level recorded, DEBUG when unset; lower messages are
	// dropped without error.
	Level Level
	// JSONFormat switches the output to one JSON object per line.
	JSONFormat bool
	// DisableTime omits the timestamp from every line.
	DisableTime bool
}

// Make sure that WriterLogger is a Logger.
var _ Logger = &WriterLogger{}

// WriterLogger writes one line per message to an io.Writer and reports the
// write errors as *DeliveryError.
type WriterLogger struct {
	sink string
	out  *errWriter
	log  hclog.Logger

	lock *sync.Mutex
}

// NewConsoleLogger returns a WriterLogger writing to w, or to the standard
// output when w is nil.
func NewConsoleLogger(w io.Writer, opts Options) *WriterLogger {
	if w == nil {
		w = os.Stdout
	}
	return NewWriterLogger(consoleSinkName, w, opts)
}

// NewWriterLogger returns a WriterLogger writing to w. sink names the
// destination in delivery errors.
func NewWriterLogger(sink string, w io.Writer, opts Options) *WriterLogger {
	out := &errWriter{w: w}
	return &WriterLogger{
		sink: sink,
		out:  out,
		log: hclog.New(&hclog.LoggerOptions{
			Name:        opts.Name,
			JSONFormat:  opts.JSONFormat,
			Output:      out,
			TimeFn:      time.Now,
			DisableTime: opts.DisableTime,
			Level:       opts.Level.convertedLevel(),
		}),
		lock: new(sync.Mutex),
	}
}

func (l *WriterLogger) Log(level Level, msg string) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.out.err = nil
	l.log.Log(level.convertedLevel(), msg)
	if err := l.out.err; err != nil {
		return &DeliveryError{Sink: l.sink, Err: err}
	}

	return nil
}

// Named returns a logger sharing the same output whose lines carry name.
func (l *WriterLogger) Named(name string) Logger {
	return &WriterLogger{
		sink: l.sink,
		out:  l.out,
		log:  l.log.ResetNamed(name),
		lock: l.lock,
	}
}

// SetLevel updates the minimum recorded level.
func (l *WriterLogger) SetLevel(level Level) {
	l.log.SetLevel(level.convertedLevel())
}

// errWriter remembers the last failed write so that it can be surfaced after
// hclog, which discards write errors, returns.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		e.err = err
	}

	return n, err
}
