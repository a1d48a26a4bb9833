package diff

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/journalbridge/internal/convert"
	"github.com/gerunddev/journalbridge/internal/preview"
)

// RoundTrip encodes md to blocks, decodes it back and returns the unified
// diff between the two documents. An empty result means md survives the
// round trip unchanged.
func RoundTrip(name, md string, encoder *convert.Encoder) (string, error) {
	if encoder == nil {
		encoder = convert.NewEncoder()
	}

	bs, err := encoder.MarkdownToBlocks(md)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	decoded := convert.BlocksToMarkdown(bs)

	return Unified(name, name+" (round trip)", md, decoded), nil
}

// Unified returns a unified diff of from and to, or "" if they are equal
func Unified(fromName, toName, from, to string) string {
	edits := myers.ComputeEdits(span.URIFromPath(fromName), from, to)
	return fmt.Sprint(gotextdiff.ToUnified(fromName, toName, from, edits))
}

// Render wraps a unified diff in a diff fence and renders it for the terminal
func Render(unified string) string {
	if unified == "" {
		return ""
	}
	return preview.Terminal(fmt.Sprintf("```diff\n%s```\n", unified), preview.DefaultWidth)
}
