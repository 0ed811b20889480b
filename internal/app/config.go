package app

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	DefaultPattern   = ".*"
	DefaultSeparator = ':'
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	VariableNames []string // empty means the default variable
	Pattern       string
	Separator     rune
	Unique        bool
	AllVariables  bool
	FailOnUnset   bool

	LogFormat string
	LogLevel  string

	matcher *regexp.Regexp
}

// NewConfig applies defaults to cfg, validates it and compiles its pattern.
// A pattern that does not compile yields an *InvalidPatternError.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if cfg.Separator == 0 {
		cfg.Separator = DefaultSeparator
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	if !utf8.ValidRune(cfg.Separator) {
		return nil, fmt.Errorf("invalid separator %q", cfg.Separator)
	}

	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: cfg.Pattern, Err: err}
	}
	cfg.matcher = re

	return &cfg, nil
}

// Matcher returns the compiled filter pattern.
func (c *Config) Matcher() *regexp.Regexp {
	return c.matcher
}

// InvalidPatternError reports a filter pattern that is not a valid regular
// expression.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
