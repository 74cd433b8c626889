package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/zz/internal/configs"
	kerrors "github.com/PolarWolf314/zz/internal/errors"
	logger "github.com/PolarWolf314/zz/internal/logging"
	"github.com/PolarWolf314/zz/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// now is the clock used to date new directories.
	now = time.Now

	RootCmd = &cobra.Command{
		Use:   "zz",
		Short: "zz - dated working directories in named buckets",
		Long: `zz keeps ad-hoc working directories tidy. Register a few buckets (root
directories), then create date-prefixed directories inside them.

Examples:
  # Register a bucket; the first one becomes the default
  zz bucket add scratch ~/scratch

  # Create ~/scratch/<YYYYMMDD>_repro and jump into it
  cd "$(zz mkdir repro)"

  # List every tracked directory
  zz ls`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing zz with verbose=%t, debug=%t", verbose, debug)
			Logger.Debugf("Registry: %s", configs.UserZzSettings.ConfigPath)
			migrateLegacyStore()
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			figure.NewColorFigure("zz", "alligator2", "green", true).Print()
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("Run "+ui.Code.Sprint("zz --help")+" to see available commands"))
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(BucketCmd)
	RootCmd.AddCommand(defaultCmd)
	RootCmd.AddCommand(mkdirCmd)
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(logCmd)
}

// Execute runs the command tree and reports any error on stderr.
func Execute() error {
	err := RootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Failed(err.Error()))
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, ui.Hint(hint))
		}
	}
	return err
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoDefaultBucket):
		return "Pass " + ui.Code.Sprint("-b <bucket>") + " or run " + ui.Code.Sprint("zz default <bucket>")
	case errors.Is(err, kerrors.ErrUnknownBucket):
		return "Run " + ui.Code.Sprint("zz bucket ls") + " to see tracked buckets"
	case errors.Is(err, kerrors.ErrCorruptConfig):
		return "Fix or remove " + ui.Path.Sprint(configs.UserZzSettings.ConfigPath)
	case errors.Is(err, kerrors.ErrAlreadyExists):
		return "Pick another label"
	case errors.Is(err, kerrors.ErrIO):
		return "Check that the path above exists and is writable"
	}
	return ""
}

// migrateLegacyStore imports ~/.zz.json the first time zz runs without a registry.
// A failure is reported but doesn't block the command.
func migrateLegacyStore() {
	settings := configs.UserZzSettings
	result, err := configs.MigrateLegacyStore(settings.LegacyStorePath, settings.ConfigPath)
	if err != nil {
		Logger.Warnf("Could not migrate %s: %v", settings.LegacyStorePath, err)
		return
	}
	if result == nil {
		return
	}

	Logger.Infof("Migrated %d buckets from %s (backup at %s)", result.Buckets, settings.LegacyStorePath, result.BackupPath)
	for _, skipped := range result.Skipped {
		Logger.Warnf("Skipped legacy bucket %s", skipped)
	}
}

// ResetGlobalState resets all command globals to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	now = time.Now
	saveRegistry = configs.SaveRegistry
	resetMkdirState()
	resetLsState()
	resetLogState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag in the tree to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
