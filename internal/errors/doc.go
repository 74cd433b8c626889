// Package errors provides typed error values for zz.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Registry errors: a bucket reference can't be resolved (ErrUnknownBucket, ErrNoDefaultBucket)
//   - Input errors: bad names or paths (ErrInvalidPath, ErrInvalidName)
//   - Storage errors: persisted state problems (ErrIO, ErrCorruptConfig, ErrAlreadyExists)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("bucket %q: %w", name, errors.ErrUnknownBucket)
//
// Keep the underlying cause for filesystem failures:
//
//	return fmt.Errorf("%w: %w", errors.ErrIO, err)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrNoDefaultBucket) {
//	    // Suggest `zz default <name>`
//	}
package errors
