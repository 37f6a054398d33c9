// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrUnknownLevel is returned by ParseLevel for unrecognized level names.
	ErrUnknownLevel = errors.New("unknown log level")
)

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	SEVERE
)

// AllLevels lists every level by increasing importance.
var AllLevels = []Level{DEBUG, INFO, WARNING, SEVERE}

// ParseLevel returns the Level named by level, ignoring case. WARN and ERROR
// are accepted as aliases of WARNING and SEVERE.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARNING", "WARN":
		return WARNING, nil
	case "SEVERE", "ERROR":
		return SEVERE, nil
	default:
		return INFO, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// LevelFromString works like ParseLevel but falls back to INFO.
func LevelFromString(level string) Level {
	parsed, _ := ParseLevel(level)
	return parsed
}

func (l Level) convertedLevel() hclog.Level {
	switch l {
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARNING:
		return hclog.Warn
	case SEVERE:
		return hclog.Error
	default:
		return hclog.Info
	}
}
