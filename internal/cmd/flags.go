// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/ctxlog/internal/config"
	"github.com/mia-platform/ctxlog/internal/logger"
)

const (
	sinksFileFlagName  = "sinks-file"
	sinksFileFlagShort = "f"
	sinksFileFlagUsage = "Path to a YAML file listing the sinks to deliver to. Overrides LOGGER_SINKS_FILE."

	outputFlagName  = "output"
	outputFlagShort = "o"
	outputFlagUsage = "Sink to deliver to: stdout, stderr, file or null. Overrides LOGGER_OUTPUT."

	fileFlagName  = "file"
	fileFlagUsage = "Path of the file used by the file output. Overrides LOGGER_FILE_PATH."

	jsonFlagName  = "json"
	jsonFlagUsage = "Write JSON lines instead of text. Overrides LOGGER_JSON_FORMAT."

	stdinMessage = "-"
)

// logFlags collects the CLI options of the log command.
type logFlags struct {
	sinksFile  string
	output     string
	filePath   string
	jsonFormat bool

	loadConfig func() (*config.Config, error)
}

// addFlags registers the CLI flags on cmd.
func (f *logFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.sinksFile, sinksFileFlagName, sinksFileFlagShort, "", sinksFileFlagUsage)
	cmd.Flags().StringVarP(&f.output, outputFlagName, outputFlagShort, "", outputFlagUsage)
	cmd.Flags().StringVar(&f.filePath, fileFlagName, "", fileFlagUsage)
	cmd.Flags().BoolVar(&f.jsonFormat, jsonFlagName, false, jsonFlagUsage)
}

// sinksConfig loads the configuration from the environment and applies the
// flags set on the command line.
func (f *logFlags) sinksConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(sinksFileFlagName) {
		cfg.SinksFile = f.sinksFile
	}
	if flags.Changed(outputFlagName) {
		cfg.Output = f.output
	}
	if flags.Changed(fileFlagName) {
		cfg.FilePath = f.filePath
	}
	if flags.Changed(jsonFlagName) {
		cfg.JSONFormat = f.jsonFormat
	}
	return cfg, nil
}

// toOptions builds an options instance from the environment, the parsed flags
// and the CLI arguments.
func (f *logFlags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	if len(args) == 0 {
		return nil, errNoArguments
	}

	level, err := logger.ParseLevel(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidLevel, args[0])
	}

	cfg, err := f.sinksConfig(cmd)
	if err != nil {
		return nil, err
	}

	return &options{
		level:   level,
		message: strings.Join(args[1:], " "),
		config:  cfg,
		streams: config.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
		stdin:   cmd.InOrStdin(),
	}, nil
}
