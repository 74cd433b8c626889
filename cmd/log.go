package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/zz/internal/audit"
	"github.com/PolarWolf314/zz/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logBucket    string
	logOperation string
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 20, "number of entries to show (0 shows all)")
	logCmd.Flags().StringVarP(&logBucket, "bucket", "b", "", "filter by bucket")
	logCmd.Flags().StringVar(&logOperation, "op", "", "filter by operation (bucket-add, bucket-forget, bucket-default, mkdir)")
}

// resetLogState resets the log command's global state for testing.
func resetLogState() {
	logLimit = 20
	logBucket = ""
	logOperation = ""
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent history",
	Long: `Shows the most recent operations zz has performed: buckets added,
forgotten or made default, and directories created.

Examples:
  zz log                 # Last 20 entries
  zz log -n 0            # Everything
  zz log -b work         # Only the "work" bucket
  zz log --op mkdir      # Only created directories`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")
		Logger.Debugf("Reading history from %s", audit.LogPath())

		if logLimit < 0 {
			return fmt.Errorf("--number must not be negative, got %d", logLimit)
		}

		result, err := workflows.History(cmd.Context(), workflows.HistoryOptions{
			Limit:     logLimit,
			Bucket:    logBucket,
			Operation: logOperation,
		})
		if err != nil {
			return err
		}
		Logger.Debugf("Parsed %d entries, showing %d", result.Total, len(result.Entries))

		if len(result.Entries) == 0 {
			if result.Total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No history entries match the filters.")
			}
			return nil
		}

		writeHistory(cmd.OutOrStdout(), result.Entries)
		return nil
	},
}

func writeHistory(w io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		details := e.Path
		if e.Label != "" {
			details = e.Label + " " + e.Path
		}
		fmt.Fprintf(w, "%-19s  %-14s  %-12s  %s\n", formatHistoryTime(e.Timestamp), e.Operation, e.Bucket, details)
	}
}

// formatHistoryTime renders a history timestamp in local time, or returns
// it unchanged if it doesn't parse.
func formatHistoryTime(ts string) string {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
