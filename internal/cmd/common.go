// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/ctxlog/internal/config"
	"github.com/mia-platform/ctxlog/internal/logger"
	"github.com/mia-platform/ctxlog/internal/server"
)

var (
	errNoArguments  = errors.New("no level provided")
	errInvalidLevel = errors.New("invalid level provided")
	errNoMessage    = errors.New("no message provided")

	// defaultConfigLoader reads the logging configuration from the environment.
	defaultConfigLoader = config.LoadConfig
	// defaultServerConfigLoader reads the HTTP configuration from the environment.
	defaultServerConfigLoader = server.LoadServerConfig
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidLevel), errors.Is(err, errNoMessage):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// validArgsFunc provides shell completion of the level for the "log" command.
func validArgsFunc(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	if len(args) == 0 {
		for _, level := range logger.AllLevels {
			name := level.String()
			if strings.HasPrefix(name, strings.ToUpper(toComplete)) {
				comps = append(comps, name)
			}
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}
