// Package workflows implements the business logic behind each zz command.
//
// The cmd/ package stays a thin layer that parses flags, loads the
// registry, calls a workflow and formats the result. Workflows do the rest:
//
//   - AddBucket, ForgetBucket, SetDefaultBucket: registry changes
//   - Mkdir: create <bucket>/<YYYYMMDD>_<label>
//   - List: enumerate directories in every tracked bucket
//   - History: read the history log
//
// # Registry Handling
//
// Workflows never load or save the registry. They receive it as an
// explicit *configs.Registry, mutate it in memory, and leave persisting
// it to the caller. This keeps one load and at most one save per process.
// Registry changes return their History entry instead of writing it, so the
// caller records it only after the save succeeds. Mkdir changes nothing in
// the registry and records its own entry.
//
// # Error Handling
//
// Workflows return typed errors from internal/errors, checked with
// errors.Is:
//
//	res, err := workflows.Mkdir(ctx, reg, opts)
//	if errors.Is(err, kerrors.ErrNoDefaultBucket) {
//	    // suggest `zz default <name>`
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and stop early once it is cancelled.
package workflows
