package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gerunddev/journalbridge/internal/blocks"
	"github.com/gerunddev/journalbridge/internal/convert"
	"github.com/gerunddev/journalbridge/internal/diff"
	"github.com/gerunddev/journalbridge/internal/notion"
	"github.com/gerunddev/journalbridge/internal/preview"
	"github.com/gerunddev/journalbridge/internal/styles"
)

// Encode prints the wire blocks of a markdown file
func Encode(args []string) {
	exitOnError(encode(args, os.Stdout))
}

// Decode prints the markdown of a wire block file
func Decode(args []string) {
	exitOnError(decode(args, os.Stdout, os.Stderr))
}

// RoundTrip shows what a markdown file loses when encoded and decoded
func RoundTrip(args []string) {
	exitOnError(roundTrip(args, os.Stdout))
}

// HTML prints a markdown file rendered as HTML
func HTML(args []string) {
	exitOnError(renderHTML(args, os.Stdout))
}

func encoderFor(flags map[string]string) *convert.Encoder {
	if flags["images"] == "true" {
		return convert.NewEncoder(convert.WithImageBlocks())
	}
	return convert.NewEncoder()
}

func encode(args []string, out io.Writer) error {
	positional, flags := splitArgs(args, "images")
	path, err := requireFile("encode", positional)
	if err != nil {
		return err
	}

	format, err := notion.ParseFormat(flags["format"])
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	bs, err := encoderFor(flags).MarkdownToBlocks(string(content))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	data, err := notion.Marshal(notion.FromBlocks(bs), format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func decode(args []string, out, errOut io.Writer) error {
	positional, _ := splitArgs(args)
	path, err := requireFile("decode", positional)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	wire, err := notion.DecodeBlocks(data, notion.FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bs := notion.ToBlocks(wire)
	if n := blocks.CountUnsupported(bs); n > 0 {
		fmt.Fprintln(errOut, styles.WarningStyle.Render(fmt.Sprintf("⚠ %d unsupported block(s) dropped", n)))
	}

	_, err = io.WriteString(out, convert.BlocksToMarkdown(bs))
	return err
}

func roundTrip(args []string, out io.Writer) error {
	positional, flags := splitArgs(args, "images", "plain")
	path, err := requireFile("roundtrip", positional)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	unified, err := diff.RoundTrip(filepath.Base(path), string(content), encoderFor(flags))
	if err != nil {
		return err
	}

	if unified == "" {
		fmt.Fprintln(out, styles.Success(filepath.Base(path)+" survives the round trip unchanged"))
		return nil
	}

	if flags["plain"] == "true" {
		_, err = io.WriteString(out, unified)
		return err
	}
	_, err = io.WriteString(out, diff.Render(unified))
	return err
}

func renderHTML(args []string, out io.Writer) error {
	positional, flags := splitArgs(args, "sanitize")
	path, err := requireFile("html", positional)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	html, err := preview.HTML(string(content), preview.HTMLOptions{Sanitize: flags["sanitize"] == "true"})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, html)
	return err
}
