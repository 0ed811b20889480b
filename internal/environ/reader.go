package environ

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/pathenv/internal/ctxlog"
)

// DefaultVariable is inspected when no variable names are requested.
const DefaultVariable = "PATH"

// Value is the raw text of one environment variable at read time.
type Value struct {
	Name string
	Text string
}

// Options selects which variables Read returns.
type Options struct {
	// Names lists the variables to read, in output order. Empty means
	// DefaultVariable. Ignored when All is set.
	Names []string
	// All enumerates every set variable instead of Names.
	All bool
	// FailOnUnset turns an absent named variable into an UnsetVariableError
	// instead of skipping it.
	FailOnUnset bool
}

// Read returns the values of the variables selected by opts, in request
// order for named mode and in source enumeration order for all-variables
// mode. On error no values are returned.
func Read(ctx context.Context, src Source, opts Options) ([]Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.All {
		return readAll(ctx, src)
	}
	names := opts.Names
	if len(names) == 0 {
		names = []string{DefaultVariable}
	}
	return readNamed(ctx, src, names, opts.FailOnUnset)
}

// Texts returns the Text of each value, preserving order.
func Texts(values []Value) []string {
	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = v.Text
	}
	return texts
}

func readNamed(ctx context.Context, src Source, names []string, failOnUnset bool) ([]Value, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading named variables.", "names", names, "fail_unset", failOnUnset)

	values := make([]Value, 0, len(names))
	for _, name := range names {
		text, ok := src.LookupEnv(name)
		if !ok {
			if failOnUnset {
				return nil, &UnsetVariableError{Name: name}
			}
			logger.Debug("Variable is unset, skipping.", "name", name)
			continue
		}
		if !utf8.ValidString(text) {
			return nil, &UndecodableValueError{Name: name}
		}
		values = append(values, Value{Name: name, Text: text})
	}
	return values, nil
}

func readAll(ctx context.Context, src Source) ([]Value, error) {
	logger := ctxlog.FromContext(ctx)

	env := src.Environ()
	logger.Debug("Enumerating all set variables.", "count", len(env))

	values := make([]Value, 0, len(env))
	for _, kv := range env {
		name, text, ok := splitEntry(kv)
		if !ok {
			continue
		}
		if !utf8.ValidString(text) {
			if !utf8.ValidString(name) {
				return nil, &UndecodableValueError{KeyUnreadable: true}
			}
			return nil, &UndecodableValueError{Name: name}
		}
		values = append(values, Value{Name: name, Text: text})
	}
	return values, nil
}

// splitEntry splits a "NAME=value" entry on the first '=' after the first
// byte, so names such as "=C:" keep their leading '='. Entries without a
// separator are not variables and are reported as !ok.
func splitEntry(kv string) (name, value string, ok bool) {
	if kv == "" {
		return "", "", false
	}
	i := strings.IndexByte(kv[1:], '=')
	if i < 0 {
		return "", "", false
	}
	i++
	return kv[:i], kv[i+1:], true
}
