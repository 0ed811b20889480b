package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/pathenv/internal/environ"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	source environ.Source
	config *Config
}

// NewApp is the constructor for the main application. Entries are written to
// outW and logs to logW. A nil source reads the process environment.
func NewApp(outW, logW io.Writer, config *Config, source environ.Source) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if source == nil {
		source = environ.OS()
	}

	return &App{
		outW:   outW,
		logger: logger,
		source: source,
		config: config,
	}
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
