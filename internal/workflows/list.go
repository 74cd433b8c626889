package workflows

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/zz/internal/buckets"
	"github.com/PolarWolf314/zz/internal/configs"
)

// Entry is one directory inside a bucket.
type Entry struct {
	Bucket string `json:"bucket" yaml:"bucket"`
	Name   string `json:"name" yaml:"name"`

	// Date is the YYYYMMDD prefix, or empty when the name isn't dated.
	Date string `json:"date" yaml:"date"`

	// Label is the part after the date, or the whole name when undated.
	Label string `json:"label" yaml:"label"`

	Path string `json:"path" yaml:"path"`
}

// SkippedBucket is a bucket whose directory couldn't be read.
type SkippedBucket struct {
	Bucket configs.Bucket
	Err    error
}

// ListOptions configures the list workflow.
type ListOptions struct {
	// Bucket restricts the listing to one bucket. Empty lists all of them.
	Bucket string
}

// ListResult contains the listing.
type ListResult struct {
	// Entries are grouped by bucket in registration order, lexical within a bucket.
	Entries []Entry

	Skipped []SkippedBucket
}

// List enumerates the immediate subdirectories of every tracked bucket.
//
// A bucket whose directory is missing or unreadable is reported in
// Skipped and does not fail the listing.
//
// Returns ErrUnknownBucket if opts.Bucket names an unregistered bucket.
func List(ctx context.Context, reg *configs.Registry, opts ListOptions) (*ListResult, error) {
	targets := reg.Buckets
	if opts.Bucket != "" {
		bucket, err := buckets.Resolve(reg, opts.Bucket)
		if err != nil {
			return nil, err
		}
		targets = []configs.Bucket{bucket}
	}

	result := &ListResult{}

	for _, bucket := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := listBucket(bucket)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedBucket{Bucket: bucket, Err: err})
			continue
		}
		result.Entries = append(result.Entries, entries...)
	}

	return result, nil
}

// listBucket returns the subdirectories of one bucket. os.ReadDir sorts by name.
func listBucket(bucket configs.Bucket) ([]Entry, error) {
	dirEntries, err := os.ReadDir(bucket.Path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		path := filepath.Join(bucket.Path, de.Name())
		if !isDirEntry(de, path) {
			continue
		}

		date, label := ParseDirName(de.Name())
		entries = append(entries, Entry{
			Bucket: bucket.Name,
			Name:   de.Name(),
			Date:   date,
			Label:  label,
			Path:   path,
		})
	}
	return entries, nil
}

func isDirEntry(de fs.DirEntry, path string) bool {
	if de.IsDir() {
		return true
	}
	if de.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ParseDirName splits "<YYYYMMDD>_<label>" into its parts.
// Names without a valid date prefix return an empty date and the whole name as label.
func ParseDirName(name string) (date, label string) {
	n := len(DateLayout)
	if len(name) <= n+1 || name[n] != '_' {
		return "", name
	}
	if _, err := time.Parse(DateLayout, name[:n]); err != nil {
		return "", name
	}
	return name[:n], name[n+1:]
}
