// Package configs manages the zz bucket registry and the locations it lives in.
//
// # Registry
//
// The registry is a TOML file holding the ordered list of buckets and the
// name of the default bucket:
//
//	default = "tmp"
//
//	[[buckets]]
//	  name = "tmp"
//	  path = "/tmp/zz"
//
// LoadRegistry returns an empty registry when the file does not exist and
// fails with ErrCorruptConfig when it cannot be decoded or breaks an
// invariant (duplicate names, relative paths, a dangling default).
// SaveRegistry writes to a temp file and renames it into place.
//
// The registry is a plain value: commands load it, pass it explicitly to
// the code that needs it, and save it when they changed it.
//
// # Settings
//
// UserZzSettings holds file locations, resolved once at startup:
//   - ConfigPath: $ZZ_CONFIG, or <user config dir>/zz/config.toml
//   - DataPath: $XDG_DATA_HOME/zz, or ~/.local/share/zz (history log)
//   - LegacyStorePath: ~/.zz.json, written by older releases
//
// # Migration
//
// MigrateLegacyStore converts ~/.zz.json into the TOML registry the first
// time zz runs without a registry, keeping the old file as ~/.zz.json.bak.
package configs
