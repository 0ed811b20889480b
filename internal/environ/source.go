package environ

import (
	"maps"
	"os"
	"slices"
)

// Source is a read-only view of an environment table.
type Source interface {
	// LookupEnv returns the value of the named variable and whether it is set.
	LookupEnv(name string) (string, bool)
	// Environ returns every set variable as a "NAME=value" string.
	Environ() []string
}

// osSource reads the environment of the current process.
type osSource struct{}

// OS returns a Source backed by the process environment.
func OS() Source {
	return osSource{}
}

func (osSource) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osSource) Environ() []string {
	return os.Environ()
}

// Map is an in-memory Source. Environ enumerates it in name order so that
// results are stable across runs.
type Map map[string]string

func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m Map) Environ() []string {
	env := make([]string, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		env = append(env, name+"="+m[name])
	}
	return env
}
