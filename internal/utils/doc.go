// Package utils provides shared helpers for zz.
//
// # Filesystem Utilities
//
//   - ExpandHome: expands a leading ~ to the home directory
//   - ResolvePath: ExpandHome plus filepath.Abs
//   - DirExists, PathExists: existence checks that separate "missing" from real errors
//
// # Name Utilities
//
//   - IsValidBucketName: bucket names are single tokens
//   - IsValidLabel: labels must be a single path element without whitespace
//
// # System and Terminal Utilities
//
//   - GetUsername: the current system username, recorded in history entries
//   - IsTerminal: whether a file is attached to a TTY
package utils
