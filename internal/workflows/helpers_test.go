package workflows

import (
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/zz/internal/configs"
)

// useTempSettings points history at a temp dir so tests never touch the real user data dir.
func useTempSettings(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	original := configs.UserZzSettings
	configs.UserZzSettings = &configs.UserSettings{
		ConfigPath: filepath.Join(tempDir, "config.toml"),
		DataPath:   filepath.Join(tempDir, "data"),
		Username:   "testuser",
	}
	t.Cleanup(func() { configs.UserZzSettings = original })
}
