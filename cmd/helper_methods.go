package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/zz/internal/audit"
	"github.com/PolarWolf314/zz/internal/configs"
	"github.com/PolarWolf314/zz/internal/ui"
	"github.com/PolarWolf314/zz/internal/utils"
	"github.com/briandowns/spinner"
)

// startSpinner creates a spinner with the given message and starts it when
// stderr is a terminal and neither --verbose nor --debug is set.
// Returns the spinner and a cleanup function that should be deferred.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message and prints it to stdout.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	animate := !verbose && !debug && utils.IsTerminal(os.Stderr)
	if animate {
		s.Start()
	} else {
		Logger.Debugf("Spinner disabled: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// saveRegistry persists the registry at the end of withRegistry.
var saveRegistry = configs.SaveRegistry

// withRegistry loads the registry, hands it to fn, and saves it only if fn
// reports a change. A failing fn never saves.
func withRegistry(fn func(reg *configs.Registry) (changed bool, err error)) error {
	configPath := configs.UserZzSettings.ConfigPath

	Logger.Debugf("Loading registry from %s", configPath)
	reg, err := configs.LoadRegistry(configPath)
	if err != nil {
		return err
	}
	Logger.Debugf("Registry loaded: %d buckets, default=%q", len(reg.Buckets), reg.Default)

	changed, err := fn(reg)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	Logger.Debugf("Saving registry to %s", configPath)
	if err := saveRegistry(configPath, reg); err != nil {
		return Logger.ErrorfAndReturn("failed to save registry: %w", err)
	}
	Logger.Infof("Registry saved")
	return nil
}

// recordHistory appends entry to the history log. History is best-effort,
// so a failure is only reported at debug level.
func recordHistory(entry audit.Entry) {
	if err := audit.Log(entry); err != nil {
		Logger.Debugf("Could not record %s in history: %v", entry.Operation, err)
	}
}
