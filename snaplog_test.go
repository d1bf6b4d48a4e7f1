package docsnap

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestLoadLog(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty log", func(t *testing.T) {
		t.Parallel()

		log, err := LoadLog(filepath.Join(t.TempDir(), "absent.json"))
		if err != nil {
			t.Fatalf("LoadLog() error = %v", err)
		}
		if len(log) != 0 {
			t.Errorf("len(log) = %d, want 0", len(log))
		}
	})

	t.Run("existing entries survive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		content := `{"id-1": {"git hash": "abc", "note": "first"}}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		log, err := LoadLog(path)
		if err != nil {
			t.Fatalf("LoadLog() error = %v", err)
		}
		entry, ok := log["id-1"]
		if !ok {
			t.Fatal("entry id-1 missing")
		}
		if entry.GitHash != "abc" || entry.Note != "first" {
			t.Errorf("entry = %+v, want {abc first}", entry)
		}
	})

	t.Run("invalid JSON fails and leaves file untouched", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		garbage := []byte("{not json")
		if err := os.WriteFile(path, garbage, 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadLog(path)
		if !errors.Is(err, ErrLogParse) {
			t.Fatalf("LoadLog() error = %v, want ErrLogParse", err)
		}

		after, readErr := os.ReadFile(path)
		if readErr != nil {
			t.Fatal(readErr)
		}
		if string(after) != string(garbage) {
			t.Error("invalid log file was modified")
		}
	})
}

func TestLogAppendAndSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")

	log, err := LoadLog(path)
	if err != nil {
		t.Fatal(err)
	}

	id := log.Append("d670460b4b4aece5915caf5c68d12f560a9fe3e4", "v1")
	if !uuidPattern.MatchString(id) {
		t.Errorf("Append() id = %q, not a UUID", id)
	}
	if err := log.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Round-trip: reloaded log equals the prior mapping plus the new entry.
	reloaded, err := LoadLog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded) != 1 {
		t.Fatalf("len(reloaded) = %d, want 1", len(reloaded))
	}
	entry := reloaded[id]
	if entry.GitHash != "d670460b4b4aece5915caf5c68d12f560a9fe3e4" || entry.Note != "v1" {
		t.Errorf("entry = %+v", entry)
	}

	// Second append grows the log by exactly one and keeps the old entry.
	id2 := reloaded.Append("0000000000000000000000000000000000000000", "v2")
	if id2 == id {
		t.Error("Append() returned a duplicate ID")
	}
	if err := reloaded.Save(path); err != nil {
		t.Fatal(err)
	}
	final, err := LoadLog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(final) != 2 {
		t.Errorf("len(final) = %d, want 2", len(final))
	}
	if final[id] != entry {
		t.Error("prior entry mutated by second append")
	}
}

func TestLogSaveUsesWireFieldNames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	log := Log{}
	log.Append("abc", "note text")
	if err := log.Save(path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("saved log is not valid JSON: %v", err)
	}
	for _, fields := range decoded {
		if _, ok := fields["git hash"]; !ok {
			t.Error(`saved entry missing "git hash" field`)
		}
		if _, ok := fields["note"]; !ok {
			t.Error(`saved entry missing "note" field`)
		}
	}
}

func TestRefTail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid", "8c4a57f2-19ad-4b2e-9f6e-0a1b2c3d4e5f", "0a1b2c3d4e5f"},
		{"no separator", "plainid", "plainid"},
		{"trailing separator", "abc-", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := refTail(tt.id); got != tt.want {
				t.Errorf("refTail(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
