package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/workflows"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	lsBucket string
	lsOutput string
)

func init() {
	lsCmd.Flags().StringVarP(&lsBucket, "bucket", "b", "", "only list this bucket")
	lsCmd.Flags().StringVarP(&lsOutput, "output", "o", "text", "output format: text, json or yaml")
}

// resetLsState resets the ls command's global state for testing.
func resetLsState() {
	lsBucket = ""
	lsOutput = "text"
}

var lsCmd = &cobra.Command{
	Use:   "ls [-b <bucket>]",
	Short: "List tracked directories",
	Long: `Lists the directories inside every bucket, one per line:

  <bucket> <date> <label> <path>

Buckets appear in the order they were added and directories in name
order. Directories without a date prefix show "-" as their date. A bucket
whose directory is missing is skipped with a warning.

Examples:
  zz ls
  zz ls -b work
  zz ls -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting ls command")

		switch lsOutput {
		case "text", "json", "yaml":
		default:
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", lsOutput)
		}

		_, cleanup := startSpinner("Scanning buckets...")

		var result *workflows.ListResult
		err := withRegistry(func(reg *configs.Registry) (bool, error) {
			var err error
			result, err = workflows.List(cmd.Context(), reg, workflows.ListOptions{Bucket: lsBucket})
			return false, err
		})
		cleanup()
		if err != nil {
			return err
		}

		for _, skipped := range result.Skipped {
			Logger.Warnf("Skipping bucket %s: %v", skipped.Bucket.Name, skipped.Err)
		}
		Logger.Debugf("Found %d entries, skipped %d buckets", len(result.Entries), len(result.Skipped))

		return writeEntries(cmd.OutOrStdout(), result.Entries, lsOutput)
	},
}

func writeEntries(w io.Writer, entries []workflows.Entry, format string) error {
	if entries == nil {
		entries = []workflows.Entry{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to marshal entries to YAML: %w", err)
		}
		return enc.Close()
	}

	for _, e := range entries {
		date := e.Date
		if date == "" {
			date = "-"
		}
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", e.Bucket, date, e.Label, e.Path); err != nil {
			return err
		}
	}
	return nil
}
