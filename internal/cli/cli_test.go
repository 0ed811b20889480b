package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/pathenv/internal/app"
	"github.com/specialistvlad/pathenv/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	defaults := app.Config{
		Pattern:   ".*",
		Separator: ':',
		LogLevel:  "warn",
		LogFormat: "text",
	}
	with := func(mutate func(c *app.Config)) *app.Config {
		c := defaults
		mutate(&c)
		return &c
	}

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErrCode  int
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
		checkErr       func(t *testing.T, err error)
	}{
		{
			name:           "No arguments uses defaults",
			args:           []string{},
			expectedConfig: &defaults,
		},
		{
			name:           "Nil arguments uses defaults",
			args:           nil,
			expectedConfig: &defaults,
		},
		{
			name: "Happy Path with all long flags",
			args: []string{
				"--regex", "bin$",
				"--sep=;",
				"--unique",
				"--fail-unset",
				"--log-level=DEBUG",
				"--log-format=json",
				"LD_LIBRARY_PATH", "PATH",
			},
			expectedConfig: with(func(c *app.Config) {
				c.Pattern = "bin$"
				c.Separator = ';'
				c.Unique = true
				c.FailOnUnset = true
				c.LogLevel = "debug"
				c.LogFormat = "json"
				c.VariableNames = []string{"LD_LIBRARY_PATH", "PATH"}
			}),
		},
		{
			name: "Shorthand flags",
			args: []string{"-r", "foo", "-s", ",", "-u", "-a"},
			expectedConfig: with(func(c *app.Config) {
				c.Pattern = "foo"
				c.Separator = ','
				c.Unique = true
				c.AllVariables = true
			}),
		},
		{
			name: "Combined shorthand switches",
			args: []string{"-ua"},
			expectedConfig: with(func(c *app.Config) {
				c.Unique = true
				c.AllVariables = true
			}),
		},
		{
			name: "Flags after positional arguments",
			args: []string{"PATH", "-u", "MANPATH"},
			expectedConfig: with(func(c *app.Config) {
				c.Unique = true
				c.VariableNames = []string{"PATH", "MANPATH"}
			}),
		},
		{
			name: "Double dash ends flags",
			args: []string{"--", "-weird-name"},
			expectedConfig: with(func(c *app.Config) {
				c.VariableNames = []string{"-weird-name"}
			}),
		},
		{
			name: "Multi-byte separator",
			args: []string{"--sep", "→"},
			expectedConfig: with(func(c *app.Config) {
				c.Separator = '→'
			}),
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
				require.Contains(t, output, "--fail-unset")
				require.Contains(t, output, "-r, --regex")
			},
		},
		{
			name:          "Unknown flag returns an error",
			args:          []string{"--this-is-not-a-valid-flag"},
			expectErrCode: 2,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
				require.Contains(t, err.Error(), "pathenv --help")
			},
		},
		{
			name:          "Missing flag value returns an error",
			args:          []string{"--regex"},
			expectErrCode: 2,
		},
		{
			name:          "Empty separator returns an error",
			args:          []string{"--sep", ""},
			expectErrCode: 2,
		},
		{
			name:          "Long separator returns an error",
			args:          []string{"--sep", "::"},
			expectErrCode: 2,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "must be exactly one character")
			},
		},
		{
			name:          "Invalid log level returns an error",
			args:          []string{"--log-level=foo"},
			expectErrCode: 2,
		},
		{
			name:          "Invalid log format returns an error",
			args:          []string{"--log-format=yaml"},
			expectErrCode: 2,
		},
		{
			name:          "Invalid regex returns an error",
			args:          []string{"--regex", "("},
			expectErrCode: 1,
			checkErr: func(t *testing.T, err error) {
				var patternErr *app.InvalidPatternError
				require.True(t, errors.As(err, &patternErr), "Expected error to wrap InvalidPatternError")
				require.Equal(t, "(", patternErr.Pattern)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			config, shouldExit, err := cli.Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErrCode != 0 {
				require.Error(t, err)
				exitErr, isExitError := err.(*cli.ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, tc.expectErrCode, exitErr.Code)
				require.Nil(t, config)
				if tc.checkErr != nil {
					tc.checkErr(t, err)
				}
				return // End test here if an error is expected
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config, cmpopts.IgnoreUnexported(app.Config{})); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
				require.NotNil(t, config.Matcher(), "pattern should be compiled")
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
