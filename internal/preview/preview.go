package preview

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultWidth is the word wrap used for terminal rendering
const DefaultWidth = 120

// Terminal renders markdown for display in a terminal. If glamour cannot
// render, the markdown is returned unchanged.
func Terminal(md string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// HTMLOptions controls HTML rendering
type HTMLOptions struct {
	// Sanitize strips scripts, handlers and other unsafe markup
	Sanitize bool
}

// HTML renders markdown as HTML with GitHub-flavored extensions. Raw HTML
// such as decoded toggles is passed through unless Sanitize is set.
func HTML(md string, opts HTMLOptions) (string, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, emoji.Emoji),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := engine.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}

	if opts.Sanitize {
		return bluemonday.UGCPolicy().Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}
