// ABOUTME: Tests for the Store implementations.
// ABOUTME: Runs the same contract against memory, SQLite, and Badger backends.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupTestBadger(t *testing.T) *BadgerStore {
	t.Helper()
	b, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("Failed to open badger store: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": setupTestDB(t),
		"badger": setupTestBadger(t),
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("missing")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStoreSetGetOverwrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set("k", "one"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set("k", "two"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := s.Get("k")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != "two" {
				t.Errorf("Expected 'two', got %q", got)
			}
		})
	}
}

func TestStoreRemoveAndKeys(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"b", "a", "c"} {
				if err := s.Set(k, k); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
			}
			if err := s.Remove("b"); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			if err := s.Remove("never-set"); err != nil {
				t.Errorf("Remove of missing key should not fail: %v", err)
			}

			keys, err := s.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
				t.Errorf("Expected [a c], got %v", keys)
			}
		})
	}
}

func TestDBPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Set(StateKey, "payload"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer db.Close()

	got, err := db.Get(StateKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "payload" {
		t.Errorf("Expected payload, got %q", got)
	}
	if db.Path() != path {
		t.Errorf("Path mismatch: got %s, want %s", db.Path(), path)
	}
}

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != "/tmp/xdg-data/hypertrophy" {
		t.Errorf("DataDir = %s", got)
	}
	if got := DefaultDBPath(); got != "/tmp/xdg-data/hypertrophy/hypertrophy.db" {
		t.Errorf("DefaultDBPath = %s", got)
	}
}
