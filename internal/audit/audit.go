package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/zz/internal/configs"
)

// TimestampFormat is RFC3339 with microseconds, always UTC.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single history entry.
type Entry struct {
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Operation string `json:"op"`

	// Optional fields depending on operation.
	Bucket string `json:"bucket,omitempty"` // For bucket-add/forget/default and mkdir.
	Path   string `json:"path,omitempty"`   // Bucket root for bucket-add, created directory for mkdir.
	Label  string `json:"label,omitempty"`  // For mkdir.
}

// Log appends an entry to the history log, creating it if needed.
// Callers treat a failure as non-fatal: history is best-effort.
func Log(entry Entry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := LogPath()
	if logPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}

// LogWithUser returns an entry for op with the current user filled in.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op}
	if configs.UserZzSettings != nil {
		entry.User = configs.UserZzSettings.Username
	}
	return entry
}

// LogPath returns the path to the history log file.
// Returns empty string if no data directory is configured.
func LogPath() string {
	if configs.UserZzSettings == nil || configs.UserZzSettings.DataPath == "" {
		return ""
	}
	return filepath.Join(configs.UserZzSettings.DataPath, "history.jsonl")
}

// ReadEntries reads all entries from the history log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Tail returns the last n entries, or all of them when n <= 0.
func Tail(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
