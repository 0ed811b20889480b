package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/specialistvlad/pathenv/internal/app"
	"github.com/specialistvlad/pathenv/internal/cli"
	"github.com/specialistvlad/pathenv/internal/environ"
)

// main is the entrypoint for the pathenv application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, environ.OS(), os.Args[1:]); err != nil {
		printError(os.Stderr, colorEnabled(os.Stderr.Fd(), os.LookupEnv), err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, env environ.Source, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(outW, errW, config, env).Run(context.Background())
}

// colorEnabled reports whether output written to fd may carry ANSI colour.
// fatih/color only inspects stdout, so stderr is checked here on its own.
func colorEnabled(fd uintptr, lookupEnv func(string) (string, bool)) bool {
	if v, _ := lookupEnv("NO_COLOR"); v != "" {
		return false
	}
	if term, _ := lookupEnv("TERM"); term == "dumb" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printError(w io.Writer, colored bool, err error) {
	label := color.New(color.FgRed, color.Bold)
	if colored {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", label.Sprint("error:"), err)
}

func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
