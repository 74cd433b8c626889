package cmd

import (
	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/ui"
	"github.com/PolarWolf314/zz/internal/utils"
	"github.com/PolarWolf314/zz/internal/workflows"
	"github.com/spf13/cobra"
)

var bucketAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Register a bucket",
	Long: `Registers a bucket, or points an existing bucket at a new path.

The path may be relative or start with ~; it is stored as an absolute
path. It does not have to exist yet, but if something exists there it
must be a directory. When no default bucket is set, the bucket you add
becomes the default.

Examples:
  zz bucket add tmp /tmp/zz
  zz bucket add work ~/work/scratch`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting bucket add command")
		spinner, cleanup := startSpinner("Adding bucket...")
		defer cleanup()

		name := args[0]
		path, err := utils.ResolvePath(args[1])
		if err != nil {
			return err
		}
		Logger.Debugf("Bucket %s resolved to %s", name, path)

		var result *workflows.AddBucketResult
		err = withRegistry(func(reg *configs.Registry) (bool, error) {
			var err error
			result, err = workflows.AddBucket(cmd.Context(), reg, workflows.AddBucketOptions{
				Name: name,
				Path: path,
			})
			return err == nil, err
		})
		if err != nil {
			return err
		}
		recordHistory(result.History)

		verb := "added"
		if result.Replaced {
			verb = "updated"
		}
		finalMessage := ui.Done("Bucket " + ui.Highlight.Sprint(name) + " " + verb + " at " + ui.Path.Sprint(result.Bucket.Path))
		if result.BecameDefault {
			finalMessage += "\n" + ui.Hint(ui.Highlight.Sprint(name)+" is the default bucket")
		}
		if !result.PathExists {
			Logger.Warnf("Bucket directory %s does not exist yet; zz mkdir will create it", result.Bucket.Path)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
