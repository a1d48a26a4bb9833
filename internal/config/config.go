package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Storage backends
const (
	StorageLocal  = "local"
	StorageBlocks = "blocks"
)

// Config represents the journalbridge configuration
type Config struct {
	StorageType     string        `json:"storage_type"`
	EntriesDir      string        `json:"entries_dir"`
	LogFile         string        `json:"log_file"`
	LogLevel        string        `json:"log_level,omitempty"`
	StateFile       string        `json:"state_file"`
	EditorFrequency time.Duration `json:"-"` // Custom JSON handling below
	DayStartTime    string        `json:"day_start_time"`
	ImageBlocks     bool          `json:"image_blocks,omitempty"`
}

// rawConfig is the on-disk form with the duration as a string
type rawConfig struct {
	StorageType     string `json:"storage_type"`
	EntriesDir      string `json:"entries_dir"`
	LogFile         string `json:"log_file"`
	LogLevel        string `json:"log_level,omitempty"`
	StateFile       string `json:"state_file"`
	EditorFrequency string `json:"editor_frequency"`
	DayStartTime    string `json:"day_start_time"`
	ImageBlocks     bool   `json:"image_blocks,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		StorageType:     StorageLocal,
		EntriesDir:      filepath.Join(home, "Diary"),
		LogFile:         filepath.Join(xdg.StateHome, "journalbridge", "journalbridge.log"),
		LogLevel:        "info",
		StateFile:       StateFilePath(),
		EditorFrequency: time.Hour,
		DayStartTime:    "05:30",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "journalbridge", "config.json")
	}
	return filepath.Join(home, ".config", "journalbridge", "config.json")
}

// StateFilePath returns the default path of the entry index
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "journalbridge", "state.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes, fills defaults for, validates and expands a config file
func Parse(data []byte) (*Config, error) {
	defaults := DefaultConfig()
	raw := rawConfig{
		StorageType:     defaults.StorageType,
		EntriesDir:      defaults.EntriesDir,
		LogFile:         defaults.LogFile,
		LogLevel:        defaults.LogLevel,
		StateFile:       defaults.StateFile,
		EditorFrequency: defaults.EditorFrequency.String(),
		DayStartTime:    defaults.DayStartTime,
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Parse editor frequency duration
	frequency, err := time.ParseDuration(raw.EditorFrequency)
	if err != nil {
		return nil, fmt.Errorf("invalid editor_frequency format '%s': %w", raw.EditorFrequency, err)
	}

	cfg := &Config{
		StorageType:     raw.StorageType,
		EntriesDir:      raw.EntriesDir,
		LogFile:         raw.LogFile,
		LogLevel:        raw.LogLevel,
		StateFile:       raw.StateFile,
		EditorFrequency: frequency,
		DayStartTime:    raw.DayStartTime,
		ImageBlocks:     raw.ImageBlocks,
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		StorageType:     c.StorageType,
		EntriesDir:      c.EntriesDir,
		LogFile:         c.LogFile,
		LogLevel:        c.LogLevel,
		StateFile:       c.StateFile,
		EditorFrequency: c.EditorFrequency.String(),
		DayStartTime:    c.DayStartTime,
		ImageBlocks:     c.ImageBlocks,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.StorageType,
			validation.Required,
			validation.In(StorageLocal, StorageBlocks).Error("must be one of: local, blocks")),
		validation.Field(&c.EntriesDir, validation.Required),
		validation.Field(&c.LogFile, validation.Required),
		validation.Field(&c.StateFile, validation.Required),
		validation.Field(&c.LogLevel,
			validation.In("debug", "info", "warn", "error").Error("must be one of: debug, info, warn, error")),
		validation.Field(&c.EditorFrequency,
			validation.Required.Error("must be positive"),
			validation.Min(time.Minute).Error("must be at least 1m")),
		validation.Field(&c.DayStartTime, validation.Required, validation.By(validClock)),
	)
}

// DayStart returns the configured start of day as an offset from midnight
func (c *Config) DayStart() time.Duration {
	t, err := time.Parse("15:04", c.DayStartTime)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// EntryDate returns the journal day that now belongs to; times before the
// day start count toward the previous day
func (c *Config) EntryDate(now time.Time) time.Time {
	shifted := now.Add(-c.DayStart())
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, now.Location())
}

func validClock(value any) error {
	s, _ := value.(string)
	if _, err := time.Parse("15:04", s); err != nil {
		return errors.New("must be a time of day in HH:MM form")
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.EntriesDir, err = expandPath(c.EntriesDir)
	if err != nil {
		return fmt.Errorf("failed to expand entries_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	c.StateFile, err = expandPath(c.StateFile)
	if err != nil {
		return fmt.Errorf("failed to expand state_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
