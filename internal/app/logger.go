package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to w. The level is parsed
// by slog itself, so offsets such as "debug+2" work too; anything unparsable
// falls back to warn. Format "json" selects the JSON handler, anything else text.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	minLevel := slog.LevelWarn
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err == nil {
		minLevel = parsed
	}

	opts := &slog.HandlerOptions{Level: minLevel}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
