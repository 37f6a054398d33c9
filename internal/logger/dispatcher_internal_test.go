// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDispatcher(t *testing.T) {
	t.Parallel()

	dispatcher := NewDispatcher()
	assert.Same(t, rawStderr, dispatcher.fallback)
	assert.Same(t, rawStderr, std.fallback)

	file, ok := rawStderr.(*os.File)
	require.True(t, ok)
	assert.Equal(t, uintptr(2), file.Fd())
	assert.NotSame(t, os.Stderr, file)
}

// TestExitTerminate is not parallel: it swaps the package level exit and
// raw stderr while no other test of the package is running.
func TestExitTerminate(t *testing.T) {
	stderr := new(strings.Builder)
	codes := make([]int, 0, 1)

	previousStderr, previousExit := rawStderr, exit
	t.Cleanup(func() {
		rawStderr, exit = previousStderr, previousExit
	})
	rawStderr = stderr
	exit = func(code int) { codes = append(codes, code) }

	diagnostic := &UnrecoverableError{
		Level:       SEVERE,
		Message:     "lost",
		DeliveryErr: errors.New("first"),
		FallbackErr: errors.New("second"),
	}
	NewDispatcher().terminate(diagnostic)

	assert.Equal(t, []int{exitCodeUnrecoverable}, codes)
	assert.Equal(t, diagnostic.Error()+"\n", stderr.String())
}

func TestUnrecoverableErrorMessage(t *testing.T) {
	t.Parallel()

	err := &UnrecoverableError{
		Level:       WARNING,
		Message:     "original",
		DeliveryErr: errors.New("sink down"),
		FallbackErr: errors.New("stderr closed"),
	}

	assert.Equal(t,
		"fallback logging failed after logging failed: original log {level: WARNING, msg: original}\n"+
			"logging error: sink down\n"+
			"fallback error: stderr closed",
		err.Error())
}
