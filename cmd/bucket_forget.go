package cmd

import (
	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/ui"
	"github.com/PolarWolf314/zz/internal/workflows"
	"github.com/spf13/cobra"
)

var bucketForgetCmd = &cobra.Command{
	Use:   "forget <name>",
	Short: "Stop tracking a bucket",
	Long: `Removes a bucket from the registry. The bucket's directory and
everything in it are left untouched.

If the bucket was the default, no default is set afterwards until you
choose one with 'zz default <name>'.

Examples:
  zz bucket forget tmp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting bucket forget command")
		spinner, cleanup := startSpinner("Forgetting bucket...")
		defer cleanup()

		name := args[0]
		var result *workflows.ForgetBucketResult
		err := withRegistry(func(reg *configs.Registry) (bool, error) {
			var err error
			result, err = workflows.ForgetBucket(cmd.Context(), reg, name)
			return err == nil, err
		})
		if err != nil {
			return err
		}
		recordHistory(result.History)

		finalMessage := ui.Done("Forgot bucket " + ui.Highlight.Sprint(name) + " " + ui.Muted.Sprint(result.Bucket.Path))
		if result.WasDefault {
			finalMessage += "\n" + ui.Hint("No default bucket is set; run "+ui.Code.Sprint("zz default <name>")+" to pick one")
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
