package logger

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEventHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.EntrySaved("2026-10-16", "blocks", 4)
	l.StorageError("save", "2026-10-16", errors.New("disk full"))
	l.EntrySkipped("2026-10-16", "unchanged")

	out := buf.String()
	for _, want := range []string{"entry saved", "date=2026-10-16", "blocks=4", "storage error", "disk full"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "entry skipped") {
		t.Error("Debug events should be hidden at the default level")
	}
}

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.UnsupportedBlocks("2026-10-16", 2)
	l.EntrySkipped("2026-10-16", "unchanged")

	out := buf.String()
	if !strings.Contains(out, "unsupported blocks dropped") || !strings.Contains(out, "entry skipped") {
		t.Errorf("Expected both events, got:\n%s", out)
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journalbridge.log")

	l, cleanup, err := NewFileLogger(path, "not-a-level")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer cleanup()

	if l.GetLevel() != log.InfoLevel {
		t.Errorf("Unknown level should fall back to info, got %v", l.GetLevel())
	}
}
