// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/mia-platform/ctxlog/internal/logger"
)

var (
	// ErrFakeFailure is the error returned by the failing fakes.
	ErrFakeFailure = errors.New("fake failure")
)

var _ logger.Logger = &Recorder{}

// Entry is a message received by a Recorder.
type Entry struct {
	Level   logger.Level
	Message string
}

// Recorder keeps every delivered message in order.
type Recorder struct {
	tb testing.TB

	lock    sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder bound to tb.
func NewRecorder(tb testing.TB) *Recorder {
	tb.Helper()
	return &Recorder{tb: tb}
}

func (r *Recorder) Log(level logger.Level, msg string) error {
	r.tb.Helper()
	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries = append(r.entries, Entry{Level: level, Message: msg})
	return nil
}

// Entries returns a copy of the recorded messages.
func (r *Recorder) Entries() []Entry {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]Entry(nil), r.entries...)
}

var _ logger.Logger = &Failing{}

// Failing rejects every message with a *logger.DeliveryError and counts the attempts.
type Failing struct {
	Sink string

	lock     sync.Mutex
	attempts int
}

// NewFailing returns a Failing logger that reports sink in its errors.
func NewFailing(sink string) *Failing {
	return &Failing{Sink: sink}
}

func (f *Failing) Log(logger.Level, string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.attempts++
	return &logger.DeliveryError{Sink: f.Sink, Err: ErrFakeFailure}
}

// Attempts returns how many messages the logger has rejected so far.
func (f *Failing) Attempts() int {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.attempts
}

// Writer is an io.Writer that records each write, or fails all of them when
// Fail is set.
type Writer struct {
	Fail bool

	lock   sync.Mutex
	writes []string
}

func (w *Writer) Write(p []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.Fail {
		return 0, ErrFakeFailure
	}

	w.writes = append(w.writes, string(p))
	return len(p), nil
}

// Writes returns a copy of the successful writes.
func (w *Writer) Writes() []string {
	w.lock.Lock()
	defer w.lock.Unlock()

	return append([]string(nil), w.writes...)
}

func (w *Writer) String() string {
	return strings.Join(w.Writes(), "")
}
