package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/zz/internal/configs"
	kerrors "github.com/PolarWolf314/zz/internal/errors"
)

func TestRootCommand(t *testing.T) {
	t.Run("BareInvocationShowsHint", func(t *testing.T) {
		setupTestEnvironment(t)

		stdout := mustRunCLI(t)
		if !strings.Contains(stdout, "zz --help") {
			t.Errorf("expected help hint, got: %s", stdout)
		}
	})

	t.Run("MigratesLegacyStore", func(t *testing.T) {
		setupTestEnvironment(t)
		dir := t.TempDir()
		legacyPath := configs.UserZzSettings.LegacyStorePath

		legacy := map[string]any{
			"default_bucket": "old",
			"buckets": []map[string]string{
				{"name": "old", "path": dir},
				{"name": "old", "path": "/elsewhere"},
			},
		}
		data, err := json.Marshal(legacy)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(legacyPath, data, 0600); err != nil {
			t.Fatal(err)
		}

		stdout := mustRunCLI(t, "bucket", "ls")
		if stdout != "old "+dir+" (default)\n" {
			t.Errorf("bucket ls = %q", stdout)
		}
		if _, err := os.Stat(legacyPath + ".bak"); err != nil {
			t.Errorf("expected backup: %v", err)
		}
		if _, err := os.Stat(legacyPath); !os.IsNotExist(err) {
			t.Errorf("legacy store should be moved aside")
		}

		// A second run must not migrate again.
		if got := mustRunCLI(t, "bucket", "ls"); got != stdout {
			t.Errorf("second run = %q, want %q", got, stdout)
		}
	})

	t.Run("VerboseLogsToStderr", func(t *testing.T) {
		setupTestEnvironment(t)
		dir := t.TempDir()
		mustRunCLI(t, "bucket", "add", "tmp", dir)

		stdout, stderr, err := runCLI(t, "-v", "mkdir", "foo")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stderr, "[info]") {
			t.Errorf("expected info logs on stderr, got: %s", stderr)
		}
		if strings.Contains(stdout, "[info]") {
			t.Errorf("logs leaked to stdout: %s", stdout)
		}
	})
}

func TestHintFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"NoDefault", fmt.Errorf("x: %w", kerrors.ErrNoDefaultBucket), "zz default <bucket>"},
		{"Unknown", fmt.Errorf("x: %w", kerrors.ErrUnknownBucket), "zz bucket ls"},
		{"AlreadyExists", fmt.Errorf("x: %w", kerrors.ErrAlreadyExists), "another label"},
		{"IO", fmt.Errorf("%w: creating /nope", kerrors.ErrIO), "writable"},
		{"Other", fmt.Errorf("unknown output format"), ""},
	}

	t.Setenv("NO_COLOR", "1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}
