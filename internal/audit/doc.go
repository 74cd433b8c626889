// Package audit records a history of the changes zz makes.
//
// Every mutating operation (bucket add, forget, default, mkdir) appends one
// JSON object per line to:
//
//	$XDG_DATA_HOME/zz/history.jsonl
//
// Each entry carries a UTC timestamp with microseconds, the system user,
// the operation name and the bucket, path and label involved.
//
// # Usage
//
//	entry := audit.LogWithUser("mkdir")
//	entry.Bucket = bucket.Name
//	entry.Path = created
//	_ = audit.Log(entry)
//
// # Failure Handling
//
// History is best-effort. Log returns an error so callers can mention it
// at debug level, but an operation never fails because history could not
// be written. ParseEntries skips malformed lines.
package audit
