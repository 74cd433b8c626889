package cmd

import (
	"fmt"

	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/ui"
	"github.com/spf13/cobra"
)

var bucketListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List buckets",
	Long: `Prints every tracked bucket as "<name> <path>", in the order they were
added. The default bucket is marked.

Examples:
  zz bucket ls`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting bucket ls command")

		return withRegistry(func(reg *configs.Registry) (bool, error) {
			if len(reg.Buckets) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning.Sprint("⚠")+" No buckets tracked yet")
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Hint("Run "+ui.Code.Sprint("zz bucket add <name> <path>")))
				return false, nil
			}

			for _, b := range reg.Buckets {
				line := b.Name + " " + b.Path
				if b.Name == reg.Default {
					line += " " + ui.Muted.Sprint("default")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return false, nil
		})
	},
}
