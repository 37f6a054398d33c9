// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mia-platform/ctxlog/internal/config"
	"github.com/mia-platform/ctxlog/internal/logger"
)

// options configures a single run of the log command.
type options struct {
	level   logger.Level
	message string
	config  *config.Config
	streams config.Streams
	stdin   io.Reader
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if o.message == "" {
		return errNoMessage
	}

	return o.config.Validate()
}

// execute delivers the message in a new execution context holding the
// configured sinks. ctx carries the logger of the command itself.
func (o *options) execute(ctx context.Context) error {
	sinks, closer, err := o.config.Build(o.streams)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warningf(ctx, "closing sinks: %s", err)
		}
	}()

	deliveryCtx := logger.WithLogger(ctx, sinks)
	if o.message != stdinMessage {
		logger.Debugf(ctx, "delivering %s message", o.level)
		logger.Log(deliveryCtx, o.level, o.message)
		return nil
	}

	delivered := 0
	scanner := bufio.NewScanner(o.stdin)
	for scanner.Scan() {
		logger.Log(deliveryCtx, o.level, scanner.Text())
		delivered++
	}
	logger.Debugf(ctx, "delivered %d %s messages read from stdin", delivered, o.level)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading messages from stdin: %w", err)
	}
	return nil
}
