package cmd

import (
	"fmt"

	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/workflows"
	"github.com/spf13/cobra"
)

var mkdirBucket string

func init() {
	mkdirCmd.Flags().StringVarP(&mkdirBucket, "bucket", "b", "", "bucket to create the directory in (defaults to the default bucket)")
}

// resetMkdirState resets the mkdir command's global state for testing.
func resetMkdirState() {
	mkdirBucket = ""
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir [-b <bucket>] <label>",
	Short: "Create a dated directory in a bucket",
	Long: `Creates <YYYYMMDD>_<label> inside a bucket, using today's local date,
and prints its absolute path.

The output is just the path, so the command composes with cd.

Examples:
  # Create a directory in the default bucket
  zz mkdir repro

  # Create it in a specific bucket and move into it
  cd "$(zz mkdir -b work flaky-test)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting mkdir command")

		var result *workflows.MkdirResult
		err := withRegistry(func(reg *configs.Registry) (bool, error) {
			var err error
			result, err = workflows.Mkdir(cmd.Context(), reg, workflows.MkdirOptions{
				Bucket: mkdirBucket,
				Label:  args[0],
				Now:    now(),
			})
			return false, err
		})
		if err != nil {
			return err
		}

		Logger.Infof("Created %s in bucket %s", result.Name, result.Bucket.Name)
		fmt.Fprintln(cmd.OutOrStdout(), result.Path)
		return nil
	},
}
