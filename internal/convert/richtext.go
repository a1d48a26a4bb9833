package convert

import (
	"strings"

	"github.com/gerunddev/journalbridge/internal/blocks"
)

// RichTextToMarkdown renders runs in order with no separator
func RichTextToMarkdown(runs []blocks.RichText) string {
	var md strings.Builder
	for _, r := range runs {
		md.WriteString(formatRichText(r))
	}
	return md.String()
}

// formatRichText renders a single run.
// Wrappers nest bold innermost, then italic, strikethrough, code and link,
// so bold+italic "x" renders as ***x*** and bold+code as `**x**`.
func formatRichText(r blocks.RichText) string {
	switch r.Type {
	case blocks.RichTextMention:
		return r.PlainText
	case blocks.RichTextEquation:
		return "$" + r.PlainText + "$"
	}

	formatted := r.Content
	if r.Annotations.Bold {
		formatted = "**" + formatted + "**"
	}
	if r.Annotations.Italic {
		formatted = "*" + formatted + "*"
	}
	if r.Annotations.Strikethrough {
		formatted = "~~" + formatted + "~~"
	}
	if r.Annotations.Code {
		formatted = "`" + formatted + "`"
	}

	// Underline and color have no markdown form and are dropped

	if r.Link != "" {
		formatted = "[" + formatted + "](" + r.Link + ")"
	} else if r.Href != "" {
		formatted = "[" + formatted + "](" + r.Href + ")"
	}

	return formatted
}
