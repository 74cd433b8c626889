// Package buckets adds, forgets and resolves buckets in a registry.
//
// Every function takes the registry explicitly and mutates it in memory;
// persisting it is the caller's job.
package buckets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/zz/internal/configs"
	kerrors "github.com/PolarWolf314/zz/internal/errors"
	"github.com/PolarWolf314/zz/internal/utils"
)

// Add registers name at path, overwriting an existing bucket of the same
// name in place. The bucket becomes the default when no default is set.
//
// path must be absolute. It need not exist yet, but if something exists
// there it must be a directory.
func Add(reg *configs.Registry, name, path string) (replaced bool, err error) {
	if !utils.IsValidBucketName(name) {
		return false, fmt.Errorf("bucket name %q: %w", name, kerrors.ErrInvalidName)
	}
	if err := ValidatePath(path); err != nil {
		return false, err
	}

	bucket := configs.Bucket{Name: name, Path: filepath.Clean(path)}

	if i := reg.Index(name); i >= 0 {
		reg.Buckets[i] = bucket
		replaced = true
	} else {
		reg.Buckets = append(reg.Buckets, bucket)
	}

	if reg.Default == "" {
		reg.Default = name
	}
	return replaced, nil
}

// ValidatePath rejects paths that can't serve as a bucket root.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("bucket path is empty: %w", kerrors.ErrInvalidPath)
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("bucket path %q is not absolute: %w", path, kerrors.ErrInvalidPath)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("bucket path %q is not a directory: %w", path, kerrors.ErrInvalidPath)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("%w: checking %s: %w", kerrors.ErrIO, path, err)
	}
	return nil
}

// Forget removes the bucket and clears the default if it pointed there.
// The bucket's directory is left untouched.
func Forget(reg *configs.Registry, name string) (wasDefault bool, err error) {
	i := reg.Index(name)
	if i < 0 {
		return false, fmt.Errorf("bucket %q: %w", name, kerrors.ErrUnknownBucket)
	}

	reg.Buckets = append(reg.Buckets[:i], reg.Buckets[i+1:]...)
	if reg.Default == name {
		reg.Default = ""
		wasDefault = true
	}
	return wasDefault, nil
}

// SetDefault points the default at an existing bucket.
func SetDefault(reg *configs.Registry, name string) error {
	if reg.Index(name) < 0 {
		return fmt.Errorf("bucket %q: %w", name, kerrors.ErrUnknownBucket)
	}
	reg.Default = name
	return nil
}

// Resolve returns the named bucket, or the default bucket when name is empty.
func Resolve(reg *configs.Registry, name string) (configs.Bucket, error) {
	if name == "" {
		bucket, ok := reg.DefaultBucket()
		if !ok {
			return configs.Bucket{}, kerrors.ErrNoDefaultBucket
		}
		return bucket, nil
	}

	bucket, ok := reg.Find(name)
	if !ok {
		return configs.Bucket{}, fmt.Errorf("bucket %q: %w", name, kerrors.ErrUnknownBucket)
	}
	return bucket, nil
}
