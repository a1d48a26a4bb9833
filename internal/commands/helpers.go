package commands

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/gerunddev/journalbridge/internal/config"
	"github.com/gerunddev/journalbridge/internal/logger"
	"github.com/gerunddev/journalbridge/internal/storage"
	"github.com/gerunddev/journalbridge/internal/styles"
)

// SaveInfo summarizes the most recent save found in the log
type SaveInfo struct {
	At     time.Time
	Date   string
	Blocks int
}

// ParseLogFile reads the last N lines from the log file and extracts the
// most recent save
func ParseLogFile(logPath string, maxLines int) ([]string, SaveInfo) {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return []string{"Unable to read log file"}, SaveInfo{}
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	startIdx := 0
	if len(lines) > maxLines {
		startIdx = len(lines) - maxLines
	}
	recentLines := lines[startIdx:]

	var info SaveInfo
	for i := len(recentLines) - 1; i >= 0; i-- {
		line := recentLines[i]
		if !strings.Contains(line, "entry saved") {
			continue
		}

		// Format: 2026-10-16 09:12:01 INFO entry saved date=2026-10-16 backend=blocks blocks=4
		if len(line) > 19 {
			if t, err := time.Parse(time.DateTime, line[:19]); err == nil {
				info.At = t
			}
		}
		info.Date = fieldValue(line, "date")
		if idx := strings.Index(line, "blocks="); idx != -1 {
			_, _ = fmt.Sscanf(line[idx:], "blocks=%d", &info.Blocks) //nolint:errcheck // best effort parsing
		}
		break
	}

	return recentLines, info
}

func fieldValue(line, key string) string {
	for _, field := range strings.Fields(line) {
		if v, ok := strings.CutPrefix(field, key+"="); ok {
			return v
		}
	}
	return ""
}

// splitArgs separates positional arguments from --flag values. Names in
// boolFlags take no value.
func splitArgs(args []string, boolFlags ...string) ([]string, map[string]string) {
	isBool := make(map[string]bool, len(boolFlags))
	for _, name := range boolFlags {
		isBool[name] = true
	}

	var positional []string
	flags := make(map[string]string)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, ok := strings.CutPrefix(arg, "--")
		if !ok {
			positional = append(positional, arg)
			continue
		}
		if isBool[name] {
			flags[name] = "true"
			continue
		}
		if i+1 < len(args) {
			flags[name] = args[i+1]
			i++
		} else {
			flags[name] = ""
		}
	}
	return positional, flags
}

// requireFile returns the single file argument of a command
func requireFile(command string, positional []string) (string, error) {
	if len(positional) != 1 {
		return "", fmt.Errorf("usage: journalbridge %s <file>", command)
	}
	return positional[0], nil
}

// entryDate resolves --date, defaulting to the journal day of now
func entryDate(cfg *config.Config, value string, now time.Time) (time.Time, error) {
	if value == "" {
		return cfg.EntryDate(now), nil
	}
	date, err := time.ParseInLocation(storage.DateLayout, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': want YYYY-MM-DD", value)
	}
	return date, nil
}

// environment is the loaded config with its logger and storage backend
type environment struct {
	cfg     *config.Config
	log     *logger.Logger
	store   storage.Storage
	cleanup func()
}

func loadEnvironment() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, cleanup, err := logger.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.ConfigLoaded(cfg.StorageType, cfg.EntriesDir, cfg.EditorFrequency)

	store, err := storage.New(cfg, log)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &environment{cfg: cfg, log: log, store: store, cleanup: cleanup}, nil
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, styles.Failure(err.Error()))
	os.Exit(1)
}

type entryFrontMatter struct {
	Date string `yaml:"date"`
}

// readEntryFile reads a markdown entry, splitting off an optional YAML
// front matter block. The front matter date, if any, is returned as-is.
func readEntryFile(path string) (string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var meta entryFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		// A leading divider without a closing delimiter is not front matter
		return string(content), "", nil
	}
	return string(body), meta.Date, nil
}
