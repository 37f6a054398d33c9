// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the HTTP settings read from the environment.
type Config struct {
	DisableStartupMessage bool   `env:"DISABLE_STARTUP_MESSAGE" envDefault:"true"`
	HTTPHost              string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort              int    `env:"HTTP_PORT" envDefault:"3000"`
}

func LoadServerConfig() (*Config, error) {
	return loadServerConfig(env.Options{})
}

// LoadServerConfigFromMap reads the configuration from environment, ignoring
// the process environment.
func LoadServerConfigFromMap(environment map[string]string) (*Config, error) {
	return loadServerConfig(env.Options{Environment: environment})
}

func loadServerConfig(opts env.Options) (*Config, error) {
	var envVars Config
	if err := env.ParseWithOptions(&envVars, opts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := envVars.Validate(); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func (c *Config) Validate() error {
	envError := make([]string, 0)

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		envError = append(envError, "HTTP_PORT is out of valid range (1-65535)")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}
