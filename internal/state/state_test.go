package state

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNewState(t *testing.T) {
	s := NewState()

	if s.Entries == nil {
		t.Error("Entries map should be initialized")
	}
	if len(s.Entries) != 0 {
		t.Error("Entries map should be empty")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	statePath := filepath.Join(tmpDir, "nested", "state.json")

	// Create test state
	state := NewState()
	savedAt := time.Unix(1760600000, 0)
	state.Update("2026-10-16", "page-123", "# 2026-10-16\n", 1, savedAt)

	// Save
	if err := state.Save(statePath); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	// Load
	loaded, err := Load(statePath)
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	// Verify
	if len(loaded.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(loaded.Entries))
	}

	entry := loaded.Entries["2026-10-16"]
	if entry == nil {
		t.Fatal("Entry state not found")
	}
	if entry.PageID != "page-123" {
		t.Errorf("PageID mismatch: got %s, want page-123", entry.PageID)
	}
	if entry.Blocks != 1 {
		t.Errorf("Blocks mismatch: got %d, want 1", entry.Blocks)
	}
	if !loaded.GetMTime("2026-10-16").Equal(savedAt) {
		t.Errorf("MTime mismatch: got %v, want %v", loaded.GetMTime("2026-10-16"), savedAt)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	statePath := filepath.Join(tmpDir, "nonexistent.json")

	// Should return empty state, not error
	state, err := Load(statePath)
	if err != nil {
		t.Fatalf("Load should not error on missing file: %v", err)
	}

	if state == nil {
		t.Fatal("State should not be nil")
	}
	if len(state.Entries) != 0 {
		t.Error("State should be empty")
	}
}

func TestComputeHash(t *testing.T) {
	hash := ComputeHash("Hello, World!")

	if !strings.HasPrefix(hash, "sha256:") {
		t.Errorf("Hash should start with 'sha256:', got: %s", hash)
	}
	if hash != ComputeHash("Hello, World!") {
		t.Error("Hash should be deterministic")
	}
	if hash == ComputeHash("Different content") {
		t.Error("Hash should change when content changes")
	}
}

func TestHasChanged(t *testing.T) {
	state := NewState()

	if !state.HasChanged("2026-10-16", "first") {
		t.Error("Unknown date should be marked as changed")
	}

	state.Update("2026-10-16", "p1", "first", 1, time.Now())

	if state.HasChanged("2026-10-16", "first") {
		t.Error("Same content should not be marked as changed")
	}
	if !state.HasChanged("2026-10-16", "second") {
		t.Error("New content should be marked as changed")
	}
}

func TestPageIDAndDates(t *testing.T) {
	state := NewState()
	state.Update("2026-10-16", "p2", "b", 1, time.Now())
	state.Update("2026-10-14", "p1", "a", 1, time.Now())

	if state.PageID("2026-10-14") != "p1" {
		t.Errorf("PageID mismatch: got %q", state.PageID("2026-10-14"))
	}
	if state.PageID("2000-01-01") != "" {
		t.Error("Unknown date should have no page ID")
	}
	if !state.GetMTime("2000-01-01").IsZero() {
		t.Error("Unknown date should have zero mtime")
	}

	expected := []string{"2026-10-14", "2026-10-16"}
	if got := state.Dates(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Dates = %v, want %v", got, expected)
	}
}
