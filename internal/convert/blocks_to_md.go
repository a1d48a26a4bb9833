package convert

import (
	"strings"

	"github.com/gerunddev/journalbridge/internal/blocks"
)

// BlocksToMarkdown renders blocks in order. Each block carries its own
// trailing newlines, so nothing is inserted between them.
func BlocksToMarkdown(bs []blocks.Block) string {
	var md strings.Builder
	for _, b := range bs {
		md.WriteString(BlockToMarkdown(b))
	}
	return md.String()
}

// BlockToMarkdown renders one block. Cases without a markdown mapping
// render to the empty string.
func BlockToMarkdown(b blocks.Block) string {
	switch v := b.(type) {
	case blocks.Heading:
		return strings.Repeat("#", clampLevel(v.Level)) + " " + RichTextToMarkdown(v.RichText) + "\n"
	case blocks.Paragraph:
		return RichTextToMarkdown(v.RichText) + "\n"
	case blocks.BulletedListItem:
		return "- " + RichTextToMarkdown(v.RichText) + "\n"
	case blocks.NumberedListItem:
		// Always "1."; renderers renumber
		return "1. " + RichTextToMarkdown(v.RichText) + "\n"
	case blocks.ToDo:
		return todoToMarkdown(v)
	case blocks.Toggle:
		return toggleToMarkdown(v)
	case blocks.Code:
		return codeToMarkdown(v)
	case blocks.Quote:
		return "> " + RichTextToMarkdown(v.RichText) + "\n\n"
	case blocks.Callout:
		return "> " + v.Icon + " " + RichTextToMarkdown(v.RichText) + "\n\n"
	case blocks.Divider:
		return "---\n"
	case blocks.Table, blocks.Bookmark, blocks.Image, blocks.Equation, blocks.Unsupported:
		return ""
	}
	return ""
}

func todoToMarkdown(todo blocks.ToDo) string {
	checkbox := "- [ ]"
	if todo.Checked {
		checkbox = "- [x]"
	}
	return checkbox + " " + RichTextToMarkdown(todo.RichText) + "\n"
}

func toggleToMarkdown(toggle blocks.Toggle) string {
	return "<details><summary>" + RichTextToMarkdown(toggle.RichText) + "</summary>\n\n" +
		BlocksToMarkdown(toggle.Children) +
		"</details>\n\n"
}

// codeToMarkdown joins the runs as-is; runs produced by the encoder hold
// one line each without newlines, so multi-line code collapses to one line.
func codeToMarkdown(code blocks.Code) string {
	return "```" + code.Language.String() + "\n" +
		RichTextToMarkdown(code.RichText) + "\n" +
		"```\n\n"
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}
