// Package entries turns raw variable values into printable lines: it splits
// them on a separator, filters them with a regular expression, optionally
// drops repeats, and writes the result one entry per line.
package entries

import (
	"io"
	"regexp"
	"strings"
)

// Pipeline holds the transforms applied to variable values.
type Pipeline struct {
	Separator rune
	// Matcher selects entries; nil keeps every entry.
	Matcher *regexp.Regexp
	Unique  bool
}

// Apply splits, filters and optionally deduplicates values. Output order
// follows the order of values and, within a value, the split order.
func (p Pipeline) Apply(values []string) []string {
	out := Filter(Split(values, p.Separator), p.Matcher)
	if p.Unique {
		out = Unique(out)
	}
	return out
}

// Split splits every value on sep and concatenates the results. Empty entries
// are preserved, so "a::b" yields "a", "" and "b" and "" yields one empty entry.
func Split(values []string, sep rune) []string {
	s := string(sep)
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, s)...)
	}
	return out
}

// Filter keeps the entries that re matches anywhere in the entry.
func Filter(in []string, re *regexp.Regexp) []string {
	if re == nil {
		return in
	}
	out := make([]string, 0, len(in))
	for _, e := range in {
		if re.MatchString(e) {
			out = append(out, e)
		}
	}
	return out
}

// Unique drops every entry equal to an earlier one, keeping first occurrences
// in place.
func Unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, e := range in {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Print writes each entry followed by a newline. It stops at the first write
// error; lines written before it stay written.
func Print(w io.Writer, in []string) error {
	for _, e := range in {
		if _, err := io.WriteString(w, e+"\n"); err != nil {
			return err
		}
	}
	return nil
}
