package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/specialistvlad/pathenv/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

const usageHint = "Run 'pathenv --help' for usage."

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...) + "\n" + usageHint}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		cfg app.Config
		sep string
		ran bool
	)

	cmd := &cobra.Command{
		Use:   "pathenv [flags] [VAR...]",
		Short: "Display PATH-like environment variables, one entry per line.",
		Long: `Display PATH-like environment variables, one entry per line.

Each VAR (default PATH) is split on the separator, entries are filtered with
the regex and printed in order. With --all-vars every set variable is used
instead of VAR.`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(_ *cobra.Command, names []string) error {
			ran = true
			if len(names) > 0 {
				// Kept in all-vars mode too; the reader ignores them there.
				cfg.VariableNames = names
			}
			return nil
		},
	}
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&cfg.Pattern, "regex", "r", app.DefaultPattern, "filter entries to display with a regex")
	flags.StringVarP(&sep, "sep", "s", string(app.DefaultSeparator), "entry separator, a single character")
	flags.BoolVarP(&cfg.Unique, "unique", "u", false, "do not print the same entry twice (preserves entry order)")
	flags.BoolVarP(&cfg.AllVariables, "all-vars", "a", false, "display all set variables instead of VAR")
	flags.BoolVar(&cfg.FailOnUnset, "fail-unset", false, "fail if a VAR is unset")
	flags.StringVar(&cfg.LogLevel, "log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if !ran {
		// Help was requested and printed by cobra.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	if utf8.RuneCountInString(sep) != 1 {
		return nil, false, usageError("invalid separator %q: must be exactly one character", sep)
	}
	cfg.Separator, _ = utf8.DecodeRuneInString(sep)
	if cfg.Separator == utf8.RuneError && sep != string(utf8.RuneError) {
		return nil, false, usageError("invalid separator %q: not valid UTF-8", sep)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		var patternErr *app.InvalidPatternError
		if errors.As(err, &patternErr) {
			return nil, false, &ExitError{Code: 1, Message: err.Error(), Err: err}
		}
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
