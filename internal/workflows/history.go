package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zz/internal/audit"
	kerrors "github.com/PolarWolf314/zz/internal/errors"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit keeps only the most recent entries. 0 means no limit.
	Limit int

	// Bucket filters entries by bucket name.
	Bucket string

	// Operation filters entries by operation (bucket-add, bucket-forget, bucket-default, mkdir).
	Operation string
}

// HistoryResult contains the filtered history, oldest first.
type HistoryResult struct {
	Entries []audit.Entry

	// Total is the number of entries before filtering.
	Total int
}

// History reads and filters the history log. A missing log is an empty history.
func History(ctx context.Context, opts HistoryOptions) (*HistoryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("%w: reading history: %w", kerrors.ErrIO, err)
	}

	var filtered []audit.Entry
	for _, e := range entries {
		if opts.Bucket != "" && e.Bucket != opts.Bucket {
			continue
		}
		if opts.Operation != "" && e.Operation != opts.Operation {
			continue
		}
		filtered = append(filtered, e)
	}

	return &HistoryResult{
		Entries: audit.Tail(filtered, opts.Limit),
		Total:   len(entries),
	}, nil
}
