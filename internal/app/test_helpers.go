package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/specialistvlad/pathenv/internal/environ"
)

// SetupAppTest creates a new app instance reading env, with debug logging.
// It returns the app, its entry output and its log output.
func SetupAppTest(t *testing.T, config Config, env environ.Source) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	config.LogLevel = "debug"
	cfg, err := NewConfig(config)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &bytes.Buffer{}
	logBuffer := &bytes.Buffer{}
	testApp := NewApp(out, logBuffer, cfg, env)

	t.Cleanup(func() {
		if os.Getenv("PATHENV_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
