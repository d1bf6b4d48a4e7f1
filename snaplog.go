package docsnap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Entry records one snapshot: the pinned commit and the caller's note.
// The "git hash" key name is part of the on-disk log format.
type Entry struct {
	GitHash string `json:"git hash"`
	Note    string `json:"note"`
}

// Log maps snapshot IDs to entries. The whole log is rewritten on every
// append; insertion order is not preserved.
type Log map[string]Entry

// newID generates snapshot IDs. Overridable in tests.
var newID = uuid.NewString

// logFilePermissions for the snapshot log: rw-r--r--.
const logFilePermissions = 0o644

// LoadLog reads the snapshot log at path. A missing file yields an empty
// log; a file that is not a valid JSON object yields ErrLogParse and the
// file is left untouched.
func LoadLog(path string) (Log, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if os.IsNotExist(err) {
		return Log{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot log: %w", err)
	}

	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogParse, path, err)
	}
	if log == nil {
		log = Log{}
	}
	return log, nil
}

// Append inserts a new entry under a fresh UUID and returns the ID.
func (l Log) Append(gitHash, note string) string {
	id := newID()
	l[id] = Entry{GitHash: gitHash, Note: note}
	return id
}

// Save rewrites the whole log at path, pretty-printed with stable
// four-space indentation.
func (l Log) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	if err := os.WriteFile(path, data, logFilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	return nil
}

// refTail returns the final dash-separated fragment of a snapshot ID.
// For a UUID this is the trailing 12-hex segment.
func refTail(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '-' {
			return id[i+1:]
		}
	}
	return id
}
