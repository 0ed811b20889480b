// Package cli parses command-line arguments into an app.Config and maps
// invalid invocations to ExitError values carrying the process exit code.
package cli
