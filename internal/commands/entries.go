package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gerunddev/journalbridge/internal/config"
	"github.com/gerunddev/journalbridge/internal/preview"
	"github.com/gerunddev/journalbridge/internal/state"
	"github.com/gerunddev/journalbridge/internal/storage"
	"github.com/gerunddev/journalbridge/internal/styles"
)

// Save stores a markdown file as the entry for a journal day
func Save(args []string) {
	exitOnError(withEnvironment(func(env *environment) error {
		return save(env, args, time.Now(), os.Stdout)
	}))
}

// Show prints the entry for a journal day
func Show(args []string) {
	exitOnError(withEnvironment(func(env *environment) error {
		return show(env, args, time.Now(), os.Stdout)
	}))
}

// Latest prints the most recent entry
func Latest(args []string) {
	exitOnError(withEnvironment(func(env *environment) error {
		return latest(env, args, os.Stdout)
	}))
}

// Status displays the storage configuration and last save
func Status() {
	exitOnError(withEnvironment(func(env *environment) error {
		return status(env, os.Stdout)
	}))
}

func withEnvironment(run func(env *environment) error) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.cleanup()
	return run(env)
}

func save(env *environment, args []string, now time.Time, out io.Writer) error {
	positional, flags := splitArgs(args)
	path, err := requireFile("save", positional)
	if err != nil {
		return err
	}

	content, fmDate, err := readEntryFile(path)
	if err != nil {
		return err
	}

	// --date wins over the front matter date
	value := flags["date"]
	if value == "" {
		value = fmDate
	}
	date, err := entryDate(env.cfg, value, now)
	if err != nil {
		return err
	}

	if err := env.store.SaveEntry(date, content); err != nil {
		env.log.StorageError("save", date.Format(storage.DateLayout), err)
		return err
	}

	fmt.Fprintln(out, styles.Success(fmt.Sprintf("Saved entry for %s (%s)", date.Format(storage.DateLayout), env.store.Name())))
	return nil
}

func show(env *environment, args []string, now time.Time, out io.Writer) error {
	_, flags := splitArgs(args, "render")

	date, err := entryDate(env.cfg, flags["date"], now)
	if err != nil {
		return err
	}

	content, ok, err := env.store.GetEntry(date)
	if err != nil {
		env.log.StorageError("get", date.Format(storage.DateLayout), err)
		return err
	}
	if !ok {
		return fmt.Errorf("no entry for %s", date.Format(storage.DateLayout))
	}

	return printEntry(out, date, content, flags["render"] == "true")
}

func latest(env *environment, args []string, out io.Writer) error {
	_, flags := splitArgs(args, "render")

	date, content, ok, err := env.store.LatestEntry()
	if err != nil {
		env.log.StorageError("latest", "", err)
		return err
	}
	if !ok {
		fmt.Fprintln(out, styles.DimStyle.Render("No entries yet"))
		return nil
	}

	return printEntry(out, date, content, flags["render"] == "true")
}

func printEntry(out io.Writer, date time.Time, content string, render bool) error {
	if !render {
		_, err := io.WriteString(out, content)
		return err
	}

	fmt.Fprintln(out, styles.PanelStyle.Render(styles.TitleStyle.Render(date.Format("Monday, January 2, 2006"))))
	_, err := io.WriteString(out, preview.Terminal(content, preview.DefaultWidth))
	return err
}

func status(env *environment, out io.Writer) error {
	cfg := env.cfg

	fmt.Fprintln(out, styles.TitleStyle.Render("journalbridge status"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Storage:     %s\n", styles.HighlightStyle.Render(cfg.StorageType))
	fmt.Fprintf(out, "  Entries dir: %s\n", cfg.EntriesDir)
	fmt.Fprintf(out, "  Day starts:  %s\n", cfg.DayStartTime)

	ext := ".md"
	if cfg.StorageType == config.StorageBlocks {
		ext = ".json"
	}
	dates, err := storage.ScanDirectory(cfg.EntriesDir, ext)
	if err != nil {
		return fmt.Errorf("failed to scan entries: %w", err)
	}
	fmt.Fprintf(out, "  Entries:     %d\n", len(dates))

	if cfg.StorageType == config.StorageBlocks {
		st, err := state.Load(cfg.StateFile)
		if err != nil {
			env.log.StateError("load", err)
			return fmt.Errorf("failed to load state: %w", err)
		}
		fmt.Fprintf(out, "  Indexed:     %d\n", len(st.Dates()))
	}

	_, info := ParseLogFile(cfg.LogFile, 200)
	if info.At.IsZero() {
		fmt.Fprintln(out, styles.DimStyle.Render("  No saves logged yet"))
		return nil
	}
	fmt.Fprintf(out, "  Last save:   %s at %s (%d blocks)\n",
		info.Date, info.At.Format(time.DateTime), info.Blocks)
	return nil
}
