// ABOUTME: Data migration between hypertrophy storage backends.
// ABOUTME: Copies every key from a source store to a destination store.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entries.
type MigrateSummary struct {
	Keys     int
	Sessions int
}

// MigrateData copies all keys from src to dst. Existing destination keys are
// overwritten. Sessions counts the history entries in the migrated state, if any.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	keys, err := src.Keys()
	if err != nil {
		return nil, fmt.Errorf("list source keys: %w", err)
	}

	for _, key := range keys {
		value, err := src.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read key %q: %w", key, err)
		}
		if err := dst.Set(key, value); err != nil {
			return nil, fmt.Errorf("write key %q: %w", key, err)
		}
		summary.Keys++
	}

	if state := NewStateStore(dst, nil).Load(); state != nil {
		summary.Sessions = len(state.WorkoutHistory)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
