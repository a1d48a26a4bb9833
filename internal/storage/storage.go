package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gerunddev/journalbridge/internal/config"
	"github.com/gerunddev/journalbridge/internal/convert"
	"github.com/gerunddev/journalbridge/internal/logger"
)

// DateLayout names entry files and keys the entry index
const DateLayout = "2006-01-02"

// Storage persists one markdown entry per journal day
type Storage interface {
	Name() string
	SaveEntry(date time.Time, content string) error
	GetEntry(date time.Time) (string, bool, error)
	LatestEntry() (time.Time, string, bool, error)
}

// New returns the backend selected by cfg
func New(cfg *config.Config, log *logger.Logger) (Storage, error) {
	switch cfg.StorageType {
	case config.StorageLocal:
		return NewLocalStorage(cfg.EntriesDir, log), nil
	case config.StorageBlocks:
		var opts []convert.EncoderOption
		if cfg.ImageBlocks {
			opts = append(opts, convert.WithImageBlocks())
		}
		return NewBlockStorage(cfg.EntriesDir, cfg.StateFile, convert.NewEncoder(opts...), log)
	}
	return nil, fmt.Errorf("unknown storage type '%s'", cfg.StorageType)
}

// ScanDirectory returns the dates of all files in dir named <date><ext>,
// oldest first. A missing directory has no entries.
func ScanDirectory(dir, ext string) ([]time.Time, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var dates []time.Time
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		date, err := time.Parse(DateLayout, strings.TrimSuffix(entry.Name(), ext))
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func entryPath(dir string, date time.Time, ext string) string {
	return filepath.Join(dir, date.Format(DateLayout)+ext)
}
