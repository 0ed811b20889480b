package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pathenv/internal/ctxlog"
	"github.com/specialistvlad/pathenv/internal/entries"
	"github.com/specialistvlad/pathenv/internal/environ"
)

// Run reads the configured variables, filters their entries and prints them.
// Every variable is read before anything is printed, so a read error leaves
// the output untouched.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "all_vars", a.config.AllVariables, "names", a.config.VariableNames)

	values, err := environ.Read(ctx, a.source, environ.Options{
		Names:       a.config.VariableNames,
		All:         a.config.AllVariables,
		FailOnUnset: a.config.FailOnUnset,
	})
	if err != nil {
		return err
	}
	a.logger.Debug("Variables read.", "count", len(values))

	pipeline := entries.Pipeline{
		Separator: a.config.Separator,
		Matcher:   a.config.Matcher(),
		Unique:    a.config.Unique,
	}
	lines := pipeline.Apply(environ.Texts(values))
	a.logger.Debug("Entries selected.", "count", len(lines), "pattern", a.config.Pattern, "unique", a.config.Unique)

	if err := entries.Print(a.outW, lines); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
