package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/gerunddev/journalbridge/internal/blocks"
	"github.com/gerunddev/journalbridge/internal/convert"
	"github.com/gerunddev/journalbridge/internal/logger"
	"github.com/gerunddev/journalbridge/internal/notion"
	"github.com/gerunddev/journalbridge/internal/state"
)

// BlockStorage keeps each entry as a page of wire blocks, one JSON file
// per day, and indexes saves in a state file.
type BlockStorage struct {
	dir       string
	statePath string
	state     *state.State
	encoder   *convert.Encoder
	log       *logger.Logger

	newID func() string
	now   func() time.Time
}

// NewBlockStorage opens a page store rooted at dir with its index at statePath
func NewBlockStorage(dir, statePath string, encoder *convert.Encoder, log *logger.Logger) (*BlockStorage, error) {
	st, err := state.Load(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if encoder == nil {
		encoder = convert.NewEncoder()
	}
	if log == nil {
		log = logger.Discard()
	}

	return &BlockStorage{
		dir:       dir,
		statePath: statePath,
		state:     st,
		encoder:   encoder,
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
	}, nil
}

func (s *BlockStorage) Name() string { return "blocks" }

// SaveEntry encodes content and replaces the whole page for date.
// Content identical to the last save is skipped.
func (s *BlockStorage) SaveEntry(date time.Time, content string) error {
	key := date.Format(DateLayout)
	path := entryPath(s.dir, date, ".json")

	indexed := s.indexedContent(content)
	if !s.state.HasChanged(key, indexed) {
		if _, err := os.Stat(path); err == nil {
			s.log.EntrySkipped(key, "unchanged")
			return nil
		}
	}

	bs, err := s.encoder.MarkdownToBlocks(content)
	if err != nil {
		s.log.ConversionError(key, err)
		return fmt.Errorf("failed to encode entry %s: %w", key, err)
	}

	if n := blocks.CountUnsupported(bs); n > 0 {
		s.log.UnsupportedBlocks(key, n)
	}

	children := notion.FromBlocks(bs)
	notion.AssignIDs(children, s.newID)
	page := notion.Page{
		Object:   "page",
		ID:       s.newID(),
		Title:    key,
		Children: children,
	}

	data, err := notion.Marshal(page, notion.FormatJSON)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create entries directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.log.StorageError("save", key, err)
		return fmt.Errorf("failed to write page: %w", err)
	}

	count := notion.CountBlocks(children)
	previous, hadPrevious := s.state.Entries[key]
	s.state.Update(key, page.ID, indexed, count, s.now())
	if err := s.state.Save(s.statePath); err != nil {
		if hadPrevious {
			s.state.Entries[key] = previous
		} else {
			delete(s.state.Entries, key)
		}
		s.log.StateError("save", err)
		return err
	}

	s.log.EntrySaved(key, s.Name(), count)
	return nil
}

// indexedContent is what the entry index hashes: the markdown tagged with
// the encoder mode
func (s *BlockStorage) indexedContent(content string) string {
	if s.encoder.ImageBlocks() {
		return "image_blocks\n" + content
	}
	return content
}

// GetEntry decodes the page for date back to markdown
func (s *BlockStorage) GetEntry(date time.Time) (string, bool, error) {
	key := date.Format(DateLayout)

	data, err := os.ReadFile(entryPath(s.dir, date, ".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read page: %w", err)
	}

	wire, err := notion.DecodeBlocks(data, notion.FormatJSON)
	if err != nil {
		s.log.ConversionError(key, err)
		return "", false, fmt.Errorf("failed to decode page %s: %w", key, err)
	}

	bs := notion.ToBlocks(wire)
	if n := blocks.CountUnsupported(bs); n > 0 {
		s.log.UnsupportedBlocks(key, n)
	}

	s.log.EntryLoaded(key, s.Name(), len(data))
	return convert.BlocksToMarkdown(bs), true, nil
}

// LatestEntry returns the newest page by date, decoded
func (s *BlockStorage) LatestEntry() (time.Time, string, bool, error) {
	dates, err := ScanDirectory(s.dir, ".json")
	if err != nil {
		return time.Time{}, "", false, fmt.Errorf("failed to scan pages: %w", err)
	}
	if len(dates) == 0 {
		return time.Time{}, "", false, nil
	}

	latest := dates[len(dates)-1]
	content, ok, err := s.GetEntry(latest)
	return latest, content, ok, err
}

// PageID returns the page ID of the last save of date, or ""
func (s *BlockStorage) PageID(date time.Time) string {
	return s.state.PageID(date.Format(DateLayout))
}
