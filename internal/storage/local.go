package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/gerunddev/journalbridge/internal/logger"
)

// LocalStorage keeps entries as plain markdown files, one per day
type LocalStorage struct {
	dir string
	log *logger.Logger
}

// NewLocalStorage creates a markdown file store rooted at dir
func NewLocalStorage(dir string, log *logger.Logger) *LocalStorage {
	if log == nil {
		log = logger.Discard()
	}
	return &LocalStorage{dir: dir, log: log}
}

func (s *LocalStorage) Name() string { return "local" }

// SaveEntry overwrites the entry for date
func (s *LocalStorage) SaveEntry(date time.Time, content string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create entries directory: %w", err)
	}

	if err := os.WriteFile(entryPath(s.dir, date, ".md"), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}

	s.log.EntrySaved(date.Format(DateLayout), s.Name(), 0)
	return nil
}

// GetEntry reads the entry for date, reporting false if there is none
func (s *LocalStorage) GetEntry(date time.Time) (string, bool, error) {
	data, err := os.ReadFile(entryPath(s.dir, date, ".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read entry: %w", err)
	}

	s.log.EntryLoaded(date.Format(DateLayout), s.Name(), len(data))
	return string(data), true, nil
}

// LatestEntry returns the newest entry by date
func (s *LocalStorage) LatestEntry() (time.Time, string, bool, error) {
	dates, err := ScanDirectory(s.dir, ".md")
	if err != nil {
		return time.Time{}, "", false, fmt.Errorf("failed to scan entries: %w", err)
	}
	if len(dates) == 0 {
		return time.Time{}, "", false, nil
	}

	latest := dates[len(dates)-1]
	content, ok, err := s.GetEntry(latest)
	return latest, content, ok, err
}
