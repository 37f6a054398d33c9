// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/ctxlog/internal/config"
	"github.com/mia-platform/ctxlog/internal/logger"
	"github.com/mia-platform/ctxlog/internal/logger/fake"
)

func configFromMap(environment map[string]string) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		return config.LoadConfigFromMap(environment)
	}
}

func TestLogCmd(t *testing.T) {
	t.Parallel()

	sinksFile := filepath.Join(t.TempDir(), "sinks.yaml")
	require.NoError(t, os.WriteFile(sinksFile, []byte("- type: stdout\n- type: stderr\n  level: severe\n"), 0o600))

	testCases := map[string]struct {
		environment          map[string]string
		args                 []string
		stdin                string
		expectedError        error
		expectedErrorMessage string
		expectedUsage        bool
		expectedOut          []string
		expectedErrOut       []string
	}{
		"no arguments returns no error and print usage": {
			args:          []string{},
			expectedUsage: true,
		},
		"invalid level returns error and print usage": {
			args:                 []string{"trace", "message"},
			expectedError:        errInvalidLevel,
			expectedErrorMessage: errInvalidLevel.Error() + ": trace\n",
			expectedUsage:        true,
		},
		"missing message returns error and print usage": {
			args:                 []string{"info"},
			expectedError:        errNoMessage,
			expectedErrorMessage: errNoMessage.Error() + "\n",
			expectedUsage:        true,
		},
		"invalid environment returns error without usage": {
			environment:          map[string]string{"LOGGER_OUTPUT": "syslog"},
			args:                 []string{"info", "message"},
			expectedError:        config.ErrEnvVariablesNotValid,
			expectedErrorMessage: "LOGGER_OUTPUT must be one of stdout, stderr, file, null\n",
		},
		"invalid output flag returns error without usage": {
			args:                 []string{"info", "message", "--output", "syslog"},
			expectedError:        config.ErrEnvVariablesNotValid,
			expectedErrorMessage: "LOGGER_OUTPUT must be one of stdout, stderr, file, null\n",
		},
		"message is joined and delivered on stdout": {
			args:        []string{"warning", "disk", "almost", "full"},
			expectedOut: []string{"[WARN]  disk almost full"},
		},
		"filtered message is not delivered": {
			environment: map[string]string{"LOGGER_LEVEL": "SEVERE"},
			args:        []string{"info", "ignored"},
		},
		"output flag overrides environment": {
			environment:    map[string]string{"LOGGER_OUTPUT": "stdout"},
			args:           []string{"severe", "on stderr", "-o", "stderr", "--json"},
			expectedErrOut: []string{`"@message":"on stderr"`},
		},
		"sinks file delivers to every sink": {
			args:           []string{"severe", "everywhere", "-f", sinksFile},
			expectedOut:    []string{"[ERROR] everywhere"},
			expectedErrOut: []string{"[ERROR] everywhere"},
		},
		"stdin lines are delivered one by one": {
			args:        []string{"info", "-"},
			stdin:       "first line\nsecond line\n",
			expectedOut: []string{"[INFO]  first line", "[INFO]  second line"},
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			environment := test.environment
			if environment == nil {
				environment = map[string]string{}
			}

			cmd := newLogCmd(configFromMap(environment))
			out := new(bytes.Buffer)
			errOut := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(errOut)
			cmd.SetIn(strings.NewReader(test.stdin))
			cmd.SetArgs(test.args)

			recorder := fake.NewRecorder(t)
			ctx := logger.WithLogger(t.Context(), recorder)
			err := cmd.ExecuteContext(ctx)

			usage := cmd.UsageString()
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Contains(t, errOut.String(), test.expectedErrorMessage)
			} else {
				assert.NoError(t, err)
			}

			if test.expectedUsage {
				assert.Contains(t, out.String()+errOut.String(), usage)
				return
			}
			assert.NotContains(t, out.String()+errOut.String(), usage)

			if test.expectedError != nil {
				return
			}

			outLines := nonEmptyLines(out.String())
			require.Len(t, outLines, len(test.expectedOut))
			for i, expected := range test.expectedOut {
				assert.Contains(t, outLines[i], expected)
			}

			errLines := nonEmptyLines(errOut.String())
			require.Len(t, errLines, len(test.expectedErrOut))
			for i, expected := range test.expectedErrOut {
				assert.Contains(t, errLines[i], expected)
			}

			assert.NotEmpty(t, recorder.Entries())
			for _, entry := range recorder.Entries() {
				assert.Equal(t, logger.DEBUG, entry.Level)
			}
		})
	}
}

func TestLogCmdFileOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	cmd := newLogCmd(configFromMap(map[string]string{
		"LOGGER_OUTPUT":    "file",
		"LOGGER_FILE_PATH": path,
	}))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	for _, message := range []string{"first", "second"} {
		cmd.SetArgs([]string{"info", message})
		require.NoError(t, cmd.ExecuteContext(logger.WithLogger(t.Context(), logger.NullLogger{})))
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := nonEmptyLines(string(content))
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO]  first")
	assert.Contains(t, lines[1], "[INFO]  second")
}

func TestCompletion(t *testing.T) {
	t.Parallel()
	testCases := map[string]struct {
		args               []string
		toComplete         string
		expectedCompletion []string
	}{
		"no args, complete every level": {
			args:               []string{},
			expectedCompletion: []string{"DEBUG", "INFO", "WARNING", "SEVERE"},
		},
		"some args, no completions": {
			args: []string{"info"},
		},
		"no args, partial string, return filtered levels": {
			args:               []string{},
			toComplete:         "s",
			expectedCompletion: []string{"SEVERE"},
		},
		"no args, partial wrong string, return no level": {
			args:       []string{},
			toComplete: "x",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			args, directive := validArgsFunc(nil, test.args, test.toComplete)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.ElementsMatch(t, test.expectedCompletion, args)
		})
	}
}

func nonEmptyLines(s string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
