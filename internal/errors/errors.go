package errors

import "errors"

// Registry errors indicate a bucket reference could not be satisfied.
var (
	// ErrUnknownBucket indicates the named bucket is not tracked.
	ErrUnknownBucket = errors.New("unknown bucket")

	// ErrNoDefaultBucket indicates no bucket was given and no default is set.
	ErrNoDefaultBucket = errors.New("no default bucket set")
)

// Input errors indicate a user-supplied value was rejected before touching the filesystem.
var (
	// ErrInvalidPath indicates a bucket path is empty, relative, or not a directory.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidName indicates a bucket name or directory label is not usable.
	ErrInvalidName = errors.New("invalid name")
)

// Storage errors indicate a failure reading or writing persisted state.
var (
	// ErrIO indicates a filesystem operation failed.
	ErrIO = errors.New("i/o error")

	// ErrCorruptConfig indicates the persisted registry is malformed or breaks an invariant.
	ErrCorruptConfig = errors.New("configuration is corrupt")

	// ErrAlreadyExists indicates the target directory is already present.
	ErrAlreadyExists = errors.New("already exists")
)
