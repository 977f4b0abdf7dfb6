package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/playcell/internal/runner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadState(t *testing.T) {
	store := openTestStore(t)

	want := runner.State{Time: 1234.5, Frame: 42, Cycle: 2, FPS: 29.7}
	if err := store.SaveState("plasma", want); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	got, err := store.LoadState("plasma")
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if got != want {
		t.Errorf("LoadState = %+v, expected %+v", got, want)
	}
}

func TestLoadMissingState(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadState("nonexistent"); err == nil {
		t.Error("LoadState for a missing key should fail")
	}
}

func TestSaveStateUpserts(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveState("ripple", runner.State{Frame: 1}); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := store.SaveState("ripple", runner.State{Frame: 2, Cycle: 1}); err != nil {
		t.Fatalf("SaveState overwrite failed: %v", err)
	}

	got, err := store.LoadState("ripple")
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if got.Frame != 2 || got.Cycle != 1 {
		t.Errorf("LoadState after upsert = %+v, expected frame 2 cycle 1", got)
	}

	entries, err := store.ListStates()
	if err != nil {
		t.Fatalf("ListStates failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("ListStates returned %d entries after upsert, expected 1", len(entries))
	}
}

func TestClearState(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveState("fire", runner.State{Frame: 7}); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := store.ClearState("fire"); err != nil {
		t.Fatalf("ClearState failed: %v", err)
	}
	if _, err := store.LoadState("fire"); err == nil {
		t.Error("LoadState should fail after ClearState")
	}

	// Clearing a missing key is not an error.
	if err := store.ClearState("fire"); err != nil {
		t.Errorf("ClearState on a missing key failed: %v", err)
	}
}

func TestListStatesOrdered(t *testing.T) {
	store := openTestStore(t)

	for _, key := range []string{"ripple", "fire", "plasma"} {
		if err := store.SaveState(key, runner.State{Frame: 1}); err != nil {
			t.Fatalf("SaveState(%q) failed: %v", key, err)
		}
	}

	entries, err := store.ListStates()
	if err != nil {
		t.Fatalf("ListStates failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListStates returned %d entries, expected 3", len(entries))
	}
	want := []string{"fire", "plasma", "ripple"}
	for i, w := range want {
		if entries[i].Key != w {
			t.Errorf("entry %d key = %q, expected %q", i, entries[i].Key, w)
		}
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	store.Close()
}
