package configs

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/zz/internal/utils"
)

// UserSettings holds the per-user file locations zz reads and writes.
type UserSettings struct {
	// ConfigPath is the bucket registry file.
	ConfigPath string
	// DataPath holds the history log.
	DataPath string
	// LegacyStorePath is the JSON store written by older zz releases.
	LegacyStorePath string
	Username        string
}

// UserZzSettings is independent of the working directory, so it is resolved once at startup.
var UserZzSettings *UserSettings

func init() {
	UserZzSettings = DefaultUserSettings()
}

// DefaultUserSettings resolves locations from the environment.
//
// ZZ_CONFIG overrides the registry file. Otherwise it lives in
// <user config dir>/zz/config.toml. History goes to $XDG_DATA_HOME/zz,
// falling back to ~/.local/share/zz.
func DefaultUserSettings() *UserSettings {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(homeDir, ".config")
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	configPath := os.Getenv("ZZ_CONFIG")
	if configPath == "" {
		configPath = filepath.Join(configDir, "zz", "config.toml")
	}

	username, err := utils.GetUsername()
	if err != nil {
		username = "unknown"
	}

	return &UserSettings{
		ConfigPath:      configPath,
		DataPath:        filepath.Join(dataDir, "zz"),
		LegacyStorePath: filepath.Join(homeDir, ".zz.json"),
		Username:        username,
	}
}
