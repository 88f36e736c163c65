package syncdeals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/coursespeak/coursespeak/internal/model"
	"github.com/coursespeak/coursespeak/internal/query"
)

// Timestamp returns the filename-safe timestamp used in backup names,
// e.g. "2025-01-03T10-04-05".
func Timestamp() string {
	ts := time.Now().UTC().Format("2006-01-02T15:04:05")
	ts = strings.ReplaceAll(ts, ":", "-")
	return ts
}

// SnapshotCurrent copies the active deals file into the backup directory
// before a destructive overwrite and returns the number of records it held.
// A missing file is not an error; it snapshots nothing and reports zero.
func SnapshotCurrent(dataFile, backupDir, ts string) (int, error) {
	raw, err := os.ReadFile(dataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read current deals file: %w", err)
	}

	var deals []model.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		return 0, fmt.Errorf("current deals file is corrupt: %w", err)
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create backup directory: %w", err)
	}
	backupFile := filepath.Join(backupDir, fmt.Sprintf("deals_local_before_sync_%s.json", ts))
	if err := os.WriteFile(backupFile, raw, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write backup: %w", err)
	}
	return len(deals), nil
}

// Save writes the synced collection to the active data file plus a timestamped
// backup and a rolling "current" backup.
func Save(deals []model.Deal, dataFile, backupDir, ts string) error {
	raw, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deals: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dataFile), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if err := os.WriteFile(dataFile, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write deals file: %w", err)
	}
	if err := os.WriteFile(filepath.Join(backupDir, fmt.Sprintf("deals_sync_%s.json", ts)), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write sync backup: %w", err)
	}
	if err := os.WriteFile(filepath.Join(backupDir, "deals_current.json"), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write current backup: %w", err)
	}
	return nil
}

// Count is one name/count pair in a sync summary.
type Count struct {
	Name  string
	Count int
}

// Summarize buckets the collection by provider and normalized category,
// descending by count, for the post-sync report.
func Summarize(deals []model.Deal) (providers, categories []Count) {
	provCounts := map[string]int{}
	catCounts := map[string]int{}
	for _, d := range deals {
		prov := strings.ToLower(strings.TrimSpace(d.Provider))
		if prov == "" {
			prov = "unknown"
		}
		provCounts[prov]++
		catCounts[query.NormalizeCategory(d.Category)]++
	}
	return sortedCounts(provCounts), sortedCounts(catCounts)
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
