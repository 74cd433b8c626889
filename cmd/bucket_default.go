package cmd

import (
	"fmt"

	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/ui"
	"github.com/PolarWolf314/zz/internal/workflows"
	"github.com/spf13/cobra"
)

const defaultLong = `Sets the bucket 'zz mkdir' uses when no -b flag is given.
Without an argument, prints the current default bucket.

Examples:
  # Show the default bucket
  zz default

  # Make "work" the default
  zz default work`

var defaultCmd = &cobra.Command{
	Use:   "default [name]",
	Short: "Get or set the default bucket",
	Long:  defaultLong,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDefault,
}

var bucketDefaultCmd = &cobra.Command{
	Use:   "default [name]",
	Short: "Get or set the default bucket",
	Long:  defaultLong,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDefault,
}

func runDefault(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return showDefault(cmd)
	}

	Logger.Infof("Setting default bucket")
	spinner, cleanup := startSpinner("Setting default bucket...")
	defer cleanup()

	name := args[0]
	var result *workflows.SetDefaultBucketResult
	err := withRegistry(func(reg *configs.Registry) (bool, error) {
		var err error
		result, err = workflows.SetDefaultBucket(cmd.Context(), reg, name)
		if err != nil {
			return false, err
		}
		return result.Changed, nil
	})
	if err != nil {
		return err
	}

	if !result.Changed {
		spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Default bucket is already " + ui.Highlight.Sprint(name)
		return nil
	}
	recordHistory(result.History)
	spinner.FinalMSG = ui.Done("Default bucket set to " + ui.Highlight.Sprint(name))
	return nil
}

func showDefault(cmd *cobra.Command) error {
	return withRegistry(func(reg *configs.Registry) (bool, error) {
		bucket, ok := reg.DefaultBucket()
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning.Sprint("⚠")+" Default bucket is not set")
			return false, nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), bucket.Name)
		return false, nil
	})
}
