package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/zz/internal/audit"
	"github.com/PolarWolf314/zz/internal/buckets"
	"github.com/PolarWolf314/zz/internal/configs"
	kerrors "github.com/PolarWolf314/zz/internal/errors"
	"github.com/PolarWolf314/zz/internal/utils"
)

// DateLayout is the date prefix of every directory zz creates.
const DateLayout = "20060102"

// MkdirOptions configures the mkdir workflow.
type MkdirOptions struct {
	// Bucket selects the bucket. Empty means the default bucket.
	Bucket string

	Label string

	// Now fixes the clock. Zero means time.Now().
	Now time.Time
}

// MkdirResult contains the outcome of creating a dated directory.
type MkdirResult struct {
	Bucket configs.Bucket

	// Name is the directory name, <YYYYMMDD>_<label>.
	Name string

	// Path is the absolute path of the new directory.
	Path string
}

// DirName returns the dated directory name for label, using now's local date.
func DirName(now time.Time, label string) string {
	return now.Local().Format(DateLayout) + "_" + label
}

// Mkdir creates <bucket>/<YYYYMMDD>_<label>.
//
// An existing directory of the same name is an error. A missing bucket
// root is created first, since buckets may be registered before their
// directory exists.
//
// Returns ErrUnknownBucket, ErrNoDefaultBucket, ErrInvalidName,
// ErrAlreadyExists, or ErrIO.
func Mkdir(ctx context.Context, reg *configs.Registry, opts MkdirOptions) (*MkdirResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bucket, err := buckets.Resolve(reg, opts.Bucket)
	if err != nil {
		return nil, err
	}

	if !utils.IsValidLabel(opts.Label) {
		return nil, fmt.Errorf("label %q: %w", opts.Label, kerrors.ErrInvalidName)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	name := DirName(now, opts.Label)
	target := filepath.Join(bucket.Path, name)

	exists, err := utils.PathExists(target)
	if err != nil {
		return nil, fmt.Errorf("%w: checking %s: %w", kerrors.ErrIO, target, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", target, kerrors.ErrAlreadyExists)
	}

	if err := os.MkdirAll(bucket.Path, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating bucket %q directory %s: %w", kerrors.ErrIO, bucket.Name, bucket.Path, err)
	}

	if err := os.Mkdir(target, 0755); err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%s: %w", target, kerrors.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%w: creating %s: %w", kerrors.ErrIO, target, err)
	}

	entry := audit.LogWithUser("mkdir")
	entry.Bucket = bucket.Name
	entry.Label = opts.Label
	entry.Path = target
	_ = audit.Log(entry)

	return &MkdirResult{Bucket: bucket, Name: name, Path: target}, nil
}
