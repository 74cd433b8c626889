// Package logger provides leveled logging for zz commands.
//
// The logger supports verbosity levels controlled by the persistent
// --verbose and --debug flags on the root command. All output goes to
// stderr, so command output on stdout (directory paths, listings) can be
// consumed by scripts regardless of verbosity.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the formatted error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Scanning %d buckets", count)
//
// The root command creates the logger in its PersistentPreRunE.
package logger
