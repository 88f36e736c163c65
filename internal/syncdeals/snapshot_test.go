package syncdeals

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coursespeak/coursespeak/internal/model"
)

func TestSnapshotCurrentMissingFile(t *testing.T) {
	dir := t.TempDir()
	n, err := SnapshotCurrent(filepath.Join(dir, "deals.json"), filepath.Join(dir, "backup"), Timestamp())
	if err != nil {
		t.Fatalf("SnapshotCurrent: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 for missing file", n)
	}
}

func TestSnapshotCurrentCorruptFile(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "deals.json")
	if err := os.WriteFile(dataFile, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := SnapshotCurrent(dataFile, filepath.Join(dir, "backup"), Timestamp()); err == nil {
		t.Fatal("SnapshotCurrent accepted a corrupt data file")
	}
}

func TestSnapshotThenSave(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "deals.json")
	backupDir := filepath.Join(dir, "backup")

	old := []model.Deal{{ID: "old", Title: "Old", URL: "u"}}
	raw, _ := json.Marshal(old)
	if err := os.WriteFile(dataFile, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	ts := Timestamp()
	n, err := SnapshotCurrent(dataFile, backupDir, ts)
	if err != nil {
		t.Fatalf("SnapshotCurrent: %v", err)
	}
	if n != 1 {
		t.Errorf("previous count = %d, want 1", n)
	}

	synced := []model.Deal{
		{ID: "a", Title: "A", URL: "u"},
		{ID: "b", Title: "B", URL: "u"},
	}
	if err := Save(synced, dataFile, backupDir, ts); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The active file now holds the synced collection.
	var got []model.Deal
	readJSON(t, dataFile, &got)
	if len(got) != 2 {
		t.Fatalf("data file holds %d deals, want 2", len(got))
	}

	// The pre-sync snapshot preserves the overwritten collection.
	var snap []model.Deal
	readJSON(t, filepath.Join(backupDir, "deals_local_before_sync_"+ts+".json"), &snap)
	if len(snap) != 1 || snap[0].ID != "old" {
		t.Fatalf("snapshot = %+v, want the old collection", snap)
	}

	// Both sync backups mirror the new collection.
	var backup []model.Deal
	readJSON(t, filepath.Join(backupDir, "deals_sync_"+ts+".json"), &backup)
	if len(backup) != 2 {
		t.Errorf("timestamped backup holds %d deals, want 2", len(backup))
	}
	readJSON(t, filepath.Join(backupDir, "deals_current.json"), &backup)
	if len(backup) != 2 {
		t.Errorf("current backup holds %d deals, want 2", len(backup))
	}
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}

func TestTimestampFilenameSafe(t *testing.T) {
	ts := Timestamp()
	if strings.ContainsAny(ts, ": /") {
		t.Errorf("Timestamp() = %q contains filename-unsafe characters", ts)
	}
	if len(ts) != len("2006-01-02T15-04-05") {
		t.Errorf("Timestamp() = %q has unexpected shape", ts)
	}
}

func TestSummarize(t *testing.T) {
	deals := []model.Deal{
		{Provider: "Udemy", Category: "IT & Software"},
		{Provider: "udemy ", Category: "it-and-software"},
		{Provider: "Coursera", Category: "Design"},
		{Provider: "", Category: ""},
	}
	providers, categories := Summarize(deals)

	if providers[0].Name != "udemy" || providers[0].Count != 2 {
		t.Errorf("top provider = %+v, want udemy x2", providers[0])
	}
	found := map[string]int{}
	for _, c := range categories {
		found[c.Name] = c.Count
	}
	if found["it and software"] != 2 {
		t.Errorf("categories = %+v, want normalized bucket counted twice", categories)
	}
	if found["uncategorized"] != 1 {
		t.Errorf("categories = %+v, want one uncategorized", categories)
	}
	if found["unknown"] != 0 {
		t.Errorf("category buckets leaked provider fallback: %+v", categories)
	}

	hasUnknownProvider := false
	for _, p := range providers {
		if p.Name == "unknown" {
			hasUnknownProvider = true
		}
	}
	if !hasUnknownProvider {
		t.Errorf("providers = %+v, want an unknown bucket", providers)
	}
}
