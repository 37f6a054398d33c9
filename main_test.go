// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/ctxlog/internal/info"
	"github.com/mia-platform/ctxlog/internal/logger"
)

func TestRootCommand(t *testing.T) {
	Version = "test"
	BuildDate = "2024-06-01"

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)

	log := logger.NewConsoleLogger(cmd.OutOrStderr(), logger.Options{Name: appName})
	ctx := logger.WithLogger(t.Context(), log)

	cmd.SetArgs([]string{"--log-level", "WARNING", "version"})
	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)

	logger.Info(ctx, "ignored line for set log level")
	lines := strings.Split(buffer.String(), "\n")
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, info.VersionString(Version, BuildDate, runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	BuildDate = ""
	cmd.SetArgs([]string{"--log-level", "WARNING", "version"})
	err = cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, info.VersionString(Version, "", runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	logger.Warning(ctx, "visible warning")
	assert.Contains(t, buffer.String(), "ctxlog: visible warning")
}

func TestVersionCommandRejectsArguments(t *testing.T) {
	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)
	cmd.SetErr(buffer)

	cmd.SetArgs([]string{"version", "extra"})
	err := cmd.ExecuteContext(logger.WithLogger(t.Context(), logger.NullLogger{}))
	require.Error(t, err)
	assert.Contains(t, buffer.String(), `unknown command "extra"`)
}

func TestLevelNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"DEBUG", "INFO", "WARNING", "SEVERE"}, allLoggerLevels)
	assert.Contains(t, logLevelFlagUsage, "DEBUG, INFO, WARNING, SEVERE")
}

func TestRootSubcommands(t *testing.T) {
	t.Parallel()

	names := make([]string, 0)
	for _, sub := range rootCmd().Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"log", "serve", "version"})
}
