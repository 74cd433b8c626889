package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PolarWolf314/zz/internal/configs"
)

// testClock is the clock every CLI test runs with.
var testClock = time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)

// setupTestEnvironment points the user settings at a temp dir and returns it.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	tempUserDir := t.TempDir()
	originalUserSettings := configs.UserZzSettings
	configs.UserZzSettings = &configs.UserSettings{
		ConfigPath:      filepath.Join(tempUserDir, "config", "config.toml"),
		DataPath:        filepath.Join(tempUserDir, "data"),
		LegacyStorePath: filepath.Join(tempUserDir, ".zz.json"),
		Username:        "testuser",
	}

	t.Cleanup(func() {
		configs.UserZzSettings = originalUserSettings
		ResetGlobalState()
	})
	return tempUserDir
}

// runCLI runs the real command tree with args and returns what it wrote to
// stdout and stderr.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return runCLIWith(t, nil, args...)
}

// runCLIWith is runCLI with a hook that can swap command globals after
// they have been reset.
func runCLIWith(t *testing.T, setup func(), args ...string) (stdout, stderr string, err error) {
	t.Helper()
	ResetGlobalState()
	now = func() time.Time { return testClock }
	if setup != nil {
		setup()
	}
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	RootCmd.SetArgs(args)
	return captureOutput(Execute)
}

// mustRunCLI is runCLI that fails the test on error.
func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("zz %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout, stderr)
	}
	return stdout
}

// captureOutput captures stdout and stderr separately during function execution.
func captureOutput(fn func() error) (string, string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	drain := func(r io.Reader, out chan<- string) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		out <- buf.String()
	}
	go drain(stdoutReader, stdoutChan)
	go drain(stderrReader, stderrChan)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan, <-stderrChan, err
}
