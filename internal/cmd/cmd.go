// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/ctxlog/internal/config"
)

const (
	logCmdUsage = "log LEVEL MESSAGE..."
	logCmdShort = "deliver a message to the configured log sinks"
	logCmdLong  = `Deliver a message at the given level to the configured log sinks.
	The sinks are read from the LOGGER_* environment variables, or from the
	sinks file when one is provided; the flags override the environment.

	When the message is a single dash, every line read from the standard input
	is delivered as a separate message.

	If a sink cannot record the message, a diagnostic is written to the
	standard error of the process instead.`

	logCmdExample = `# Log a warning on the standard output
	ctxlog log warning disk almost full

	# Append every line of a build log to a file as INFO messages
	make 2>&1 | ctxlog log info - --output file --file build.log

	# Log to every sink listed in sinks.yaml
	ctxlog log severe -f sinks.yaml deployment failed`
)

// LogCmd returns the "log" cli command that delivers messages through the dispatcher.
func LogCmd() *cobra.Command {
	return newLogCmd(defaultConfigLoader)
}

func newLogCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	flags := &logFlags{
		loadConfig: loadConfig,
	}
	cmd := &cobra.Command{
		Use:     logCmdUsage,
		Short:   heredoc.Doc(logCmdShort),
		Long:    heredoc.Doc(logCmdLong),
		Example: heredoc.Doc(logCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
