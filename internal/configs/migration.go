package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/zz/internal/errors"
	"github.com/PolarWolf314/zz/internal/utils"
)

// MigrationResult contains information about what was migrated.
type MigrationResult struct {
	// Buckets is the number of buckets carried over.
	Buckets int
	// Skipped lists legacy entries that could not be carried over, with the reason.
	Skipped []string
	// BackupPath is where the legacy store was moved.
	BackupPath string
}

type legacyStore struct {
	DefaultBucket *string  `json:"default_bucket"`
	Buckets       []Bucket `json:"buckets"`
}

// IsLegacyStore reports whether a legacy JSON store exists and no registry has been written yet.
func IsLegacyStore(legacyPath, configPath string) bool {
	if legacyPath == "" {
		return false
	}

	if _, err := os.Stat(configPath); err == nil {
		return false
	}

	info, err := os.Stat(legacyPath)
	return err == nil && info.Mode().IsRegular()
}

// MigrateLegacyStore converts the legacy JSON store into the TOML registry and
// moves the legacy file aside. Returns nil, nil when there is nothing to migrate.
//
// Older releases appended duplicate names and accepted relative paths, so
// later duplicates and unusable entries are dropped rather than failing the
// whole migration. A default pointing at a dropped bucket is cleared.
func MigrateLegacyStore(legacyPath, configPath string) (*MigrationResult, error) {
	if !IsLegacyStore(legacyPath, configPath) {
		return nil, nil
	}

	data, err := os.ReadFile(legacyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", kerrors.ErrIO, legacyPath, err)
	}

	var legacy legacyStore
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrCorruptConfig, legacyPath, err)
	}

	result := &MigrationResult{}
	reg := &Registry{}

	for _, b := range legacy.Buckets {
		switch {
		case !utils.IsValidBucketName(b.Name):
			result.Skipped = append(result.Skipped, fmt.Sprintf("%q: invalid name", b.Name))
			continue
		case reg.Index(b.Name) >= 0:
			result.Skipped = append(result.Skipped, fmt.Sprintf("%q: duplicate name", b.Name))
			continue
		case !filepath.IsAbs(b.Path):
			result.Skipped = append(result.Skipped, fmt.Sprintf("%q: relative path %q", b.Name, b.Path))
			continue
		}
		reg.Buckets = append(reg.Buckets, Bucket{Name: b.Name, Path: filepath.Clean(b.Path)})
	}

	if legacy.DefaultBucket != nil && reg.Index(*legacy.DefaultBucket) >= 0 {
		reg.Default = *legacy.DefaultBucket
	}

	if err := SaveRegistry(configPath, reg); err != nil {
		return nil, err
	}

	backupPath := legacyPath + ".bak"
	if err := os.Rename(legacyPath, backupPath); err != nil {
		return nil, fmt.Errorf("%w: backing up %s: %w", kerrors.ErrIO, legacyPath, err)
	}

	result.Buckets = len(reg.Buckets)
	result.BackupPath = backupPath
	return result, nil
}
