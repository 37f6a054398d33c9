// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileLogger appends messages to a file.
type FileLogger struct {
	*WriterLogger

	file *os.File
}

// NewFileLogger opens path for appending, creating it if needed.
func NewFileLogger(path string, opts Options) (*FileLogger, error) {
	path = filepath.Clean(path)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}

	return &FileLogger{
		WriterLogger: NewWriterLogger(path, file, opts),
		file:         file,
	}, nil
}

// Close closes the underlying file; messages delivered afterwards fail.
func (f *FileLogger) Close() error {
	return f.file.Close()
}
