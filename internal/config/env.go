// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/ctxlog/internal/logger"
)

const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"
	OutputNull   = "null"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")

	availableOutputs = []string{OutputStdout, OutputStderr, OutputFile, OutputNull}
)

// Config holds the logging settings read from the environment.
type Config struct {
	LoggerLevel string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	Output      string `env:"LOGGER_OUTPUT" envDefault:"stdout"`
	FilePath    string `env:"LOGGER_FILE_PATH"`
	JSONFormat  bool   `env:"LOGGER_JSON_FORMAT" envDefault:"false"`
	SinksFile   string `env:"LOGGER_SINKS_FILE"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (*Config, error) {
	return loadConfig(env.Options{})
}

// LoadConfigFromMap reads the configuration from environment, ignoring the
// process environment.
func LoadConfigFromMap(environment map[string]string) (*Config, error) {
	return loadConfig(env.Options{Environment: environment})
}

func loadConfig(opts env.Options) (*Config, error) {
	var envVars Config
	if err := env.ParseWithOptions(&envVars, opts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := envVars.Validate(); err != nil {
		return nil, err
	}
	return &envVars, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	envError := make([]string, 0)

	if _, err := logger.ParseLevel(c.LoggerLevel); err != nil {
		envError = append(envError, "LOGGER_LEVEL is not a valid level")
	}

	// the sinks file replaces the single output
	if c.SinksFile == "" {
		c.Output = strings.ToLower(c.Output)
		if !slices.Contains(availableOutputs, c.Output) {
			envError = append(envError, "LOGGER_OUTPUT must be one of "+strings.Join(availableOutputs, ", "))
		}
		if c.Output == OutputFile && c.FilePath == "" {
			envError = append(envError, "LOGGER_FILE_PATH is required when LOGGER_OUTPUT is file")
		}
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// Sinks returns the sinks described by the configuration: the content of the
// sinks file when set, otherwise the single output.
func (c *Config) Sinks() ([]*SinkConfig, error) {
	if c.SinksFile != "" {
		return NewSinkConfigsFromPath(c.SinksFile)
	}

	return []*SinkConfig{
		{
			Type:  c.Output,
			Path:  c.FilePath,
			Level: c.LoggerLevel,
			JSON:  c.JSONFormat,
		},
	}, nil
}
