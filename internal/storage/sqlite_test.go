package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestMarkAndQueryCompletion(t *testing.T) {
	store := openTestStore(t)

	done, err := store.IsCompleted("rat-cellar")
	if err != nil {
		t.Fatalf("IsCompleted() failed: %v", err)
	}
	if done {
		t.Error("fresh store reports completion")
	}

	if err := store.MarkCompleted("rat-cellar", 12); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}

	done, err = store.IsCompleted("rat-cellar")
	if err != nil {
		t.Fatalf("IsCompleted() failed: %v", err)
	}
	if !done {
		t.Error("completion not recorded")
	}

	moves, ok, err := store.BestMoves("rat-cellar")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if !ok || moves != 12 {
		t.Errorf("BestMoves = %d, %v; want 12", moves, ok)
	}
}

func TestReplayOnlyImprovesBestMoves(t *testing.T) {
	store := openTestStore(t)

	if err := store.MarkCompleted("demolition", 20); err != nil {
		t.Fatal(err)
	}
	if err := store.MarkCompleted("demolition", 30); err != nil {
		t.Fatal(err)
	}
	moves, _, err := store.BestMoves("demolition")
	if err != nil {
		t.Fatal(err)
	}
	if moves != 20 {
		t.Errorf("worse replay raised best moves to %d", moves)
	}

	if err := store.MarkCompleted("demolition", 15); err != nil {
		t.Fatal(err)
	}
	moves, _, err = store.BestMoves("demolition")
	if err != nil {
		t.Fatal(err)
	}
	if moves != 15 {
		t.Errorf("better replay not recorded, best = %d", moves)
	}
}

func TestCompletedListing(t *testing.T) {
	store := openTestStore(t)

	store.MarkCompleted("hub", 3)
	store.MarkCompleted("rat-cellar", 12)

	entries, err := store.Completed()
	if err != nil {
		t.Fatalf("Completed() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	seen := map[string]int{}
	for _, e := range entries {
		seen[e.LevelID] = e.BestMoves
	}
	if seen["hub"] != 3 || seen["rat-cellar"] != 12 {
		t.Errorf("entries = %v", seen)
	}
}

func TestClearProgress(t *testing.T) {
	store := openTestStore(t)

	store.MarkCompleted("hub", 3)
	if err := store.ClearProgress(); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	entries, err := store.Completed()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty progress, got %d entries", len(entries))
	}
}
