package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var bucketNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// IsValidBucketName checks a bucket name is a single token (alphanumeric, dots, hyphens, underscores).
func IsValidBucketName(name string) bool {
	return bucketNamePattern.MatchString(name)
}

// IsValidLabel checks a directory label can be used as a single path element.
// Whitespace is rejected because listings are space-separated.
func IsValidLabel(label string) bool {
	if label == "" || label == "." || label == ".." {
		return false
	}
	if strings.ContainsAny(label, `/\`) {
		return false
	}
	return strings.IndexFunc(label, unicode.IsSpace) < 0
}
