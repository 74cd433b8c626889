package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/zz/internal/errors"
	"github.com/PolarWolf314/zz/internal/utils"
)

// Bucket is a named root under which dated directories are created.
type Bucket struct {
	Name string `toml:"name" json:"name" yaml:"name"`
	Path string `toml:"path" json:"path" yaml:"path"`
}

// Registry is the persisted set of buckets plus the default-bucket pointer.
// Buckets keep registration order.
type Registry struct {
	Default string   `toml:"default,omitempty"`
	Buckets []Bucket `toml:"buckets,omitempty"`
}

// Find returns the bucket with the given name.
func (r *Registry) Find(name string) (Bucket, bool) {
	if i := r.Index(name); i >= 0 {
		return r.Buckets[i], true
	}
	return Bucket{}, false
}

// Index returns the position of the named bucket, or -1.
func (r *Registry) Index(name string) int {
	for i, b := range r.Buckets {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// DefaultBucket returns the default bucket if one is set.
func (r *Registry) DefaultBucket() (Bucket, bool) {
	if r.Default == "" {
		return Bucket{}, false
	}
	return r.Find(r.Default)
}

// Validate checks the invariants a loaded registry must hold.
func (r *Registry) Validate() error {
	seen := make(map[string]bool, len(r.Buckets))
	for i, b := range r.Buckets {
		if !utils.IsValidBucketName(b.Name) {
			return fmt.Errorf("bucket #%d has invalid name %q", i+1, b.Name)
		}
		if seen[b.Name] {
			return fmt.Errorf("bucket %q is listed more than once", b.Name)
		}
		seen[b.Name] = true

		if b.Path == "" || !filepath.IsAbs(b.Path) {
			return fmt.Errorf("bucket %q has non-absolute path %q", b.Name, b.Path)
		}
	}

	if r.Default != "" && !seen[r.Default] {
		return fmt.Errorf("default bucket %q is not registered", r.Default)
	}
	return nil
}

// LoadRegistry loads the registry from path.
// A missing file yields an empty registry.
func LoadRegistry(path string) (*Registry, error) {
	reg := &Registry{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return reg, nil
	}

	if err := LoadTOML(path, reg); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: reading %s: %w", kerrors.ErrIO, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrCorruptConfig, path, err)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrCorruptConfig, path, err)
	}

	return reg, nil
}

// SaveRegistry atomically replaces the file at path with reg.
func SaveRegistry(path string, reg *Registry) error {
	if err := SaveTOML(path, reg); err != nil {
		return fmt.Errorf("%w: writing %s: %w", kerrors.ErrIO, path, err)
	}
	return nil
}
