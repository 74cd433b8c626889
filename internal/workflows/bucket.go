package workflows

import (
	"context"

	"github.com/PolarWolf314/zz/internal/audit"
	"github.com/PolarWolf314/zz/internal/buckets"
	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/utils"
)

// AddBucketOptions configures the add-bucket workflow.
type AddBucketOptions struct {
	Name string

	// Path is the bucket root. It must already be absolute; the CLI
	// resolves ~ and relative paths before calling.
	Path string
}

// AddBucketResult contains the outcome of adding a bucket.
type AddBucketResult struct {
	Bucket configs.Bucket

	// Replaced is true when an existing bucket of the same name was overwritten.
	Replaced bool

	// IsDefault is true when the bucket is the default after the add.
	IsDefault bool

	// BecameDefault is true when no default was set before the add.
	BecameDefault bool

	// PathExists reports whether the bucket root is already on disk.
	PathExists bool

	// History is the entry to record once the registry has been saved.
	History audit.Entry
}

// AddBucket registers a bucket in reg.
//
// Returns ErrInvalidName or ErrInvalidPath for unusable input.
func AddBucket(ctx context.Context, reg *configs.Registry, opts AddBucketOptions) (*AddBucketResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hadDefault := reg.Default != ""
	replaced, err := buckets.Add(reg, opts.Name, opts.Path)
	if err != nil {
		return nil, err
	}

	bucket, _ := reg.Find(opts.Name)
	exists, _ := utils.DirExists(bucket.Path)

	entry := audit.LogWithUser("bucket-add")
	entry.Bucket = bucket.Name
	entry.Path = bucket.Path

	return &AddBucketResult{
		Bucket:        bucket,
		Replaced:      replaced,
		IsDefault:     reg.Default == bucket.Name,
		BecameDefault: !hadDefault,
		PathExists:    exists,
		History:       entry,
	}, nil
}

// ForgetBucketResult contains the outcome of forgetting a bucket.
type ForgetBucketResult struct {
	Bucket configs.Bucket

	// WasDefault is true when forgetting the bucket cleared the default.
	WasDefault bool

	// History is the entry to record once the registry has been saved.
	History audit.Entry
}

// ForgetBucket stops tracking the named bucket. Nothing on disk is removed.
//
// Returns ErrUnknownBucket if the bucket isn't registered.
func ForgetBucket(ctx context.Context, reg *configs.Registry, name string) (*ForgetBucketResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bucket, _ := reg.Find(name)
	wasDefault, err := buckets.Forget(reg, name)
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("bucket-forget")
	entry.Bucket = bucket.Name
	entry.Path = bucket.Path

	return &ForgetBucketResult{Bucket: bucket, WasDefault: wasDefault, History: entry}, nil
}

// SetDefaultBucketResult contains the outcome of changing the default bucket.
type SetDefaultBucketResult struct {
	// Changed is false when the bucket already was the default.
	Changed bool

	// History is the entry to record once the registry has been saved.
	// It is only set when Changed is true.
	History audit.Entry
}

// SetDefaultBucket makes name the default bucket.
//
// Returns ErrUnknownBucket if the bucket isn't registered.
func SetDefaultBucket(ctx context.Context, reg *configs.Registry, name string) (*SetDefaultBucketResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if reg.Default == name {
		if _, ok := reg.Find(name); ok {
			return &SetDefaultBucketResult{}, nil
		}
	}

	if err := buckets.SetDefault(reg, name); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("bucket-default")
	entry.Bucket = name

	return &SetDefaultBucketResult{Changed: true, History: entry}, nil
}
