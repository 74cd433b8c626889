package cmd

import (
	"github.com/spf13/cobra"
)

// BucketCmd groups the commands that manage tracked buckets.
var BucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
	Long: `Provides commands for managing the buckets zz creates directories in.

A bucket is a named root directory. Forgetting a bucket only stops zz
from tracking it; nothing on disk is removed.

Examples:
  # Register a bucket
  zz bucket add scratch ~/scratch

  # Show tracked buckets
  zz bucket ls

  # Stop tracking a bucket
  zz bucket forget scratch`,
}

func init() {
	BucketCmd.AddCommand(bucketAddCmd)
	BucketCmd.AddCommand(bucketForgetCmd)
	BucketCmd.AddCommand(bucketDefaultCmd)
	BucketCmd.AddCommand(bucketListCmd)
}
