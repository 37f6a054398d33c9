// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/mia-platform/ctxlog/internal/logger"
)

// Streams are the writers used by the stdout and stderr sinks.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// closers closes every file opened while building the sinks.
type closers []io.Closer

func (c closers) Close() error {
	errs := make([]error, 0, len(c))
	for _, closer := range c {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build returns the logger described by the configuration, and a Closer that
// releases the files it opened. A single sink is returned as is, several sinks
// are combined in a logger.MultiLogger.
func (c *Config) Build(streams Streams) (logger.Logger, io.Closer, error) {
	sinks, err := c.Sinks()
	if err != nil {
		return nil, nil, err
	}

	return BuildSinks(sinks, logger.LevelFromString(c.LoggerLevel), streams)
}

// BuildSinks creates the loggers for sinks. Sinks without a level use defaultLevel.
func BuildSinks(sinks []*SinkConfig, defaultLevel logger.Level, streams Streams) (logger.Logger, io.Closer, error) {
	opened := make(closers, 0)
	loggers := make([]logger.Logger, 0, len(sinks))
	for _, sink := range sinks {
		log, closer, err := buildSink(sink, defaultLevel, streams)
		if err != nil {
			_ = opened.Close()
			return nil, nil, err
		}

		if closer != nil {
			opened = append(opened, closer)
		}
		loggers = append(loggers, log)
	}

	switch len(loggers) {
	case 0:
		return logger.NullLogger{}, opened, nil
	case 1:
		return loggers[0], opened, nil
	default:
		return logger.NewMultiLogger(loggers...), opened, nil
	}
}

func buildSink(sink *SinkConfig, defaultLevel logger.Level, streams Streams) (logger.Logger, io.Closer, error) {
	opts := logger.Options{
		Name:       sink.Name,
		Level:      defaultLevel,
		JSONFormat: sink.JSON,
	}
	if sink.Level != "" {
		opts.Level = logger.LevelFromString(sink.Level)
	}

	switch sink.Type {
	case OutputStdout:
		return logger.NewWriterLogger(OutputStdout, streams.Out, opts), nil, nil
	case OutputStderr:
		return logger.NewWriterLogger(OutputStderr, streams.Err, opts), nil, nil
	case OutputFile:
		fileLogger, err := logger.NewFileLogger(sink.Path, opts)
		if err != nil {
			return nil, nil, err
		}
		return fileLogger, fileLogger, nil
	case OutputNull:
		return logger.NullLogger{}, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink type %q", sink.Type)
	}
}
