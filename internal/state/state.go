package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// EntryState records the last save of one journal day
type EntryState struct {
	PageID string `json:"page_id"`
	Hash   string `json:"hash"`
	MTime  int64  `json:"mtime"`
	Blocks int    `json:"blocks"`
}

// State is the index of saved entries, keyed by date (YYYY-MM-DD)
type State struct {
	Entries map[string]*EntryState `json:"entries"`
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Entries: make(map[string]*EntryState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	if state.Entries == nil {
		state.Entries = make(map[string]*EntryState)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes the SHA256 hash of entry content
func ComputeHash(content string) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256([]byte(content)))
}

// HasChanged reports whether content differs from the last save of date
func (s *State) HasChanged(date, content string) bool {
	entry, exists := s.Entries[date]
	if !exists {
		return true
	}
	return entry.Hash != ComputeHash(content)
}

// Update records a save of date
func (s *State) Update(date, pageID, content string, blocks int, savedAt time.Time) {
	s.Entries[date] = &EntryState{
		PageID: pageID,
		Hash:   ComputeHash(content),
		MTime:  savedAt.Unix(),
		Blocks: blocks,
	}
}

// PageID returns the page ID recorded for date, or ""
func (s *State) PageID(date string) string {
	if entry, exists := s.Entries[date]; exists {
		return entry.PageID
	}
	return ""
}

// GetMTime returns the last save time of date
func (s *State) GetMTime(date string) time.Time {
	if entry, exists := s.Entries[date]; exists {
		return time.Unix(entry.MTime, 0)
	}
	return time.Time{}
}

// Dates returns all indexed dates in ascending order
func (s *State) Dates() []string {
	dates := make([]string, 0, len(s.Entries))
	for date := range s.Entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
