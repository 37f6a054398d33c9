// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSinkConfigsFromPath(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		path          string
		expectedSinks []*SinkConfig
		expectedError error
		errorContains string
	}{
		"single sink": {
			path: filepath.Join("testdata", "single.yaml"),
			expectedSinks: []*SinkConfig{
				{Type: OutputStdout, Name: "app", Level: "debug"},
			},
		},
		"list of sinks": {
			path: filepath.Join("testdata", "list.yaml"),
			expectedSinks: []*SinkConfig{
				{Type: OutputStdout, Level: "warning"},
				{Type: OutputNull},
			},
		},
		"multiple documents": {
			path: filepath.Join("testdata", "multiple.yaml"),
			expectedSinks: []*SinkConfig{
				{Type: OutputStderr, JSON: true},
				{Type: OutputStdout},
			},
		},
		"empty file": {
			path:          filepath.Join("testdata", "empty.yaml"),
			expectedSinks: []*SinkConfig{},
		},
		"missing file": {
			path:          filepath.Join("testdata", "missing.yaml"),
			expectedError: syscall.ENOENT,
		},
		"unknown field": {
			path:          filepath.Join("testdata", "unknown-field.yaml"),
			expectedError: ErrParsing,
			errorContains: "colour",
		},
		"invalid type": {
			path:          filepath.Join("testdata", "invalid-type.yaml"),
			expectedError: ErrParsing,
			errorContains: "unknown value 'syslog' for field 'type'",
		},
		"file without path and invalid level": {
			path:          filepath.Join("testdata", "file-without-path.yaml"),
			expectedError: ErrParsing,
			errorContains: "missing field 'path' for file sink; unknown value 'verbose' for field 'level'",
		},
		"scalar document": {
			path:          filepath.Join("testdata", "scalar.yaml"),
			expectedError: ErrParsing,
			errorContains: "expected a sink or a list of sinks",
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sinks, err := NewSinkConfigsFromPath(test.path)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				if test.errorContains != "" {
					assert.ErrorContains(t, err, test.errorContains)
				}
				assert.Nil(t, sinks)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expectedSinks, sinks)
		})
	}
}
