// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARNING", WARNING.String())
	assert.Equal(t, "SEVERE", SEVERE.String())
	assert.Equal(t, "Level(999)", Level(999).String())
	assert.Equal(t, "Level(-1)", Level(-1).String())

	assert.Equal(t, DEBUG, LevelFromString("debug"))
	assert.Equal(t, INFO, LevelFromString("INFO"))
	assert.Equal(t, WARNING, LevelFromString("WARNING"))
	assert.Equal(t, WARNING, LevelFromString("warn"))
	assert.Equal(t, SEVERE, LevelFromString("SEVERE"))
	assert.Equal(t, SEVERE, LevelFromString("Error"))
	assert.Equal(t, INFO, LevelFromString("INVALID"))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel(" severe ")
	require.NoError(t, err)
	assert.Equal(t, SEVERE, level)

	_, err = ParseLevel("TRACE")
	assert.ErrorIs(t, err, ErrUnknownLevel)
	assert.ErrorContains(t, err, `"TRACE"`)
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(AllLevels); i++ {
		assert.Less(t, int(AllLevels[i-1]), int(AllLevels[i]))
	}

	assert.Equal(t, hclog.Debug, DEBUG.convertedLevel())
	assert.Equal(t, hclog.Info, INFO.convertedLevel())
	assert.Equal(t, hclog.Warn, WARNING.convertedLevel())
	assert.Equal(t, hclog.Error, SEVERE.convertedLevel())
	assert.Equal(t, hclog.Info, Level(42).convertedLevel())
}
