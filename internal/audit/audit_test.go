package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog_CreatesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "audit.jsonl")

	if err := Log(logPath, Entry{User: "alice", Operation: OpInsert}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	for _, op := range []string{OpInit, OpInsert, OpShow} {
		if err := Log(logPath, Entry{User: "alice", Operation: op}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Operation != OpInit || entries[2].Operation != OpShow {
		t.Errorf("Entries out of order: %+v", entries)
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	if err := Log(logPath, Entry{Operation: OpInit}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	entries, err := ReadEntries(logPath)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadEntries = %v, %v", entries, err)
	}
	if _, err := time.Parse(TimestampFormat, entries[0].Timestamp); err != nil {
		t.Errorf("Timestamp %q does not parse: %v", entries[0].Timestamp, err)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	if err := Log(logPath, Entry{User: "alice", Operation: OpShow}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &raw); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	for _, field := range []string{"store_uuid", "replaced", "tags", "orphans", "dangling"} {
		if _, ok := raw[field]; ok {
			t.Errorf("Expected %q to be omitted", field)
		}
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry(OpSetTag, "store-uuid")

	if entry.Operation != OpSetTag {
		t.Errorf("Operation = %q", entry.Operation)
	}
	if entry.StoreUUID != "store-uuid" {
		t.Errorf("StoreUUID = %q", entry.StoreUUID)
	}
}

func TestReadEntries_Missing(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2026-01-01T00:00:00.000000Z","user":"a","op":"init"}
not json
{"ts":"2026-01-01T00:00:01.000000Z","user":"a","op":"insert","tags":1}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Tags != 1 {
		t.Errorf("Expected tags count 1, got %d", entries[1].Tags)
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil || entries != nil {
		t.Errorf("ParseEntries(nil) = %v, %v", entries, err)
	}
}
