package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gerunddev/journalbridge/internal/blocks"
)

// ErrMalformedTable is returned when a table is built from no pipe rows
var ErrMalformedTable = errors.New("malformed table: no rows")

var (
	bookmarkPattern = regexp.MustCompile(`\[(.*?)\]:\s*(.*)`)
	imagePattern    = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
)

// rule classifies the line at lines[0] and builds a block from it,
// reporting how many lines the block consumed
type rule struct {
	name  string
	match func(lines []string) bool
	build func(lines []string) (blocks.Block, int, error)
}

// Encoder turns markdown lines into blocks by walking an ordered rule list;
// the first matching rule wins. Inline emphasis is never parsed: runs keep
// the raw characters and carry no annotations.
type Encoder struct {
	imageBlocks bool
	rules       []rule
}

// EncoderOption configures an Encoder
type EncoderOption func(*Encoder)

// WithImageBlocks makes "![alt](url)" lines produce Image blocks. Without it
// image lines go through the bookmark rule, which yields Unsupported unless
// the line also contains "]:".
func WithImageBlocks() EncoderOption {
	return func(e *Encoder) {
		e.imageBlocks = true
	}
}

// NewEncoder creates an encoder
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	e.rules = e.buildRules()
	return e
}

// ImageBlocks reports whether the encoder was built WithImageBlocks
func (e *Encoder) ImageBlocks() bool {
	return e.imageBlocks
}

var defaultEncoder = NewEncoder()

// MarkdownToBlocks converts a markdown document with the default encoder
func MarkdownToBlocks(md string) ([]blocks.Block, error) {
	return defaultEncoder.MarkdownToBlocks(md)
}

// LinesToBlocks converts markdown lines with the default encoder
func LinesToBlocks(lines []string) ([]blocks.Block, error) {
	return defaultEncoder.LinesToBlocks(lines)
}

// MarkdownToBlocks splits md into lines and converts them
func (e *Encoder) MarkdownToBlocks(md string) ([]blocks.Block, error) {
	return e.LinesToBlocks(SplitLines(md))
}

// LinesToBlocks converts lines in a single forward scan. Every line ends
// up in exactly one block.
func (e *Encoder) LinesToBlocks(lines []string) ([]blocks.Block, error) {
	result := make([]blocks.Block, 0, len(lines))

	for i := 0; i < len(lines); {
		block, consumed, err := e.processLines(lines[i:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if consumed < 1 {
			consumed = 1
		}
		result = append(result, block)
		i += consumed
	}

	return result, nil
}

func (e *Encoder) processLines(lines []string) (blocks.Block, int, error) {
	for _, r := range e.rules {
		if !r.match(lines) {
			continue
		}
		block, consumed, err := r.build(lines)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", r.name, err)
		}
		return block, consumed, nil
	}
	// unreachable: the paragraph rule matches everything
	return createParagraph(lines[0]), 1, nil
}

// buildRules returns the classification rules in priority order. Several
// prefixes overlap ("- [ ] " is also "- ", "---" would be a paragraph), so
// the order is part of the grammar.
func (e *Encoder) buildRules() []rule {
	image := rule{
		name:  "image",
		match: func(lines []string) bool { return isImageLine(lines[0]) },
		build: single(createBookmark),
	}
	if e.imageBlocks {
		image.build = single(createImage)
	}

	return []rule{
		{
			name:  "heading",
			match: func(lines []string) bool { return headingLevel(lines[0]) > 0 },
			build: single(createHeading),
		},
		{
			name: "to-do",
			match: func(lines []string) bool {
				return strings.HasPrefix(lines[0], "- [ ] ") || strings.HasPrefix(lines[0], "- [x] ")
			},
			build: single(createToDo),
		},
		{
			name:  "bulleted list item",
			match: func(lines []string) bool { return strings.HasPrefix(lines[0], "- ") },
			build: single(createBulletedListItem),
		},
		{
			name:  "numbered list item",
			match: func(lines []string) bool { return isNumberedLine(lines[0]) },
			build: single(createNumberedListItem),
		},
		{
			name:  "quote",
			match: func(lines []string) bool { return strings.HasPrefix(lines[0], "> ") },
			build: single(createQuote),
		},
		{
			name:  "code",
			match: func(lines []string) bool { return strings.HasPrefix(lines[0], "```") },
			build: createCodeBlock,
		},
		{
			name:  "divider",
			match: func(lines []string) bool { return strings.HasPrefix(lines[0], "---") },
			build: single(func(string) blocks.Block { return blocks.Divider{} }),
		},
		{
			name: "table",
			match: func(lines []string) bool {
				return strings.HasPrefix(lines[0], "|") && len(lines) >= 2 && strings.HasPrefix(lines[1], "|")
			},
			build: func(lines []string) (blocks.Block, int, error) {
				table, consumed, err := ParseTable(lines)
				if err != nil {
					return nil, 0, err
				}
				return table, consumed, nil
			},
		},
		image,
		{
			name: "bookmark",
			match: func(lines []string) bool {
				return strings.HasPrefix(lines[0], "[") && strings.Contains(lines[0], "]:")
			},
			build: single(createBookmark),
		},
		{
			name:  "equation",
			match: func(lines []string) bool { return isEquationLine(lines[0]) },
			build: single(createEquation),
		},
		{
			name:  "paragraph",
			match: func([]string) bool { return true },
			build: single(createParagraph),
		},
	}
}

// single adapts a one-line constructor to a rule builder
func single(create func(line string) blocks.Block) func([]string) (blocks.Block, int, error) {
	return func(lines []string) (blocks.Block, int, error) {
		return create(lines[0]), 1, nil
	}
}

// SplitLines splits text on "\n", dropping a trailing "\r" from each line
// and the empty line after a final newline
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func headingLevel(line string) int {
	switch {
	case strings.HasPrefix(line, "# "):
		return 1
	case strings.HasPrefix(line, "## "):
		return 2
	case strings.HasPrefix(line, "### "):
		return 3
	}
	return 0
}

func isNumberedLine(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9' && strings.Contains(line, ". ")
}

func isImageLine(line string) bool {
	if !strings.HasPrefix(line, "!") {
		return false
	}
	for _, s := range []string{"[", "]", "(", ")"} {
		if !strings.Contains(line, s) {
			return false
		}
	}
	return true
}

func isEquationLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "$") && strings.HasSuffix(trimmed, "$")
}

func plainRun(content string) []blocks.RichText {
	return []blocks.RichText{blocks.Plain(content)}
}

func createHeading(line string) blocks.Block {
	level := headingLevel(line)
	content := line[level+1:]
	return blocks.Heading{Level: level, RichText: plainRun(content)}
}

func createToDo(line string) blocks.Block {
	return blocks.ToDo{
		RichText: plainRun(line[len("- [ ] "):]),
		Checked:  strings.HasPrefix(line, "- [x] "),
	}
}

func createBulletedListItem(line string) blocks.Block {
	return blocks.BulletedListItem{RichText: plainRun(strings.TrimPrefix(line, "- "))}
}

// createNumberedListItem drops the leading number and its ". " marker.
// "1. Eggs" → "Eggs"
func createNumberedListItem(line string) blocks.Block {
	content := strings.TrimLeft(line, "0123456789")
	content = strings.TrimPrefix(content, ".")
	content = strings.TrimLeft(content, " ")
	return blocks.NumberedListItem{RichText: plainRun(content)}
}

func createQuote(line string) blocks.Block {
	return blocks.Quote{RichText: plainRun(strings.TrimPrefix(line, "> "))}
}

// createCodeBlock consumes the opening fence, the body and the closing
// fence. An unterminated fence runs to the end of input.
func createCodeBlock(lines []string) (blocks.Block, int, error) {
	i := 1
	var body []blocks.RichText
	for i < len(lines) && !strings.HasPrefix(lines[i], "```") {
		body = append(body, blocks.Plain(lines[i]))
		i++
	}

	consumed := i + 1
	if consumed > len(lines) {
		consumed = len(lines)
	}

	tag := strings.TrimSpace(strings.TrimLeft(lines[0], "`"))
	return blocks.Code{
		RichText: body,
		Language: blocks.LookupCodeLanguage(tag),
	}, consumed, nil
}

// ParseTable consumes the contiguous pipe-prefixed lines at the start of
// lines. Empty cells are dropped, the first row sets the column count and
// is always treated as the header.
func ParseTable(lines []string) (blocks.Table, int, error) {
	var rows [][]string
	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], "|") {
		rows = append(rows, splitTableRow(lines[i]))
		i++
	}

	if len(rows) == 0 {
		return blocks.Table{}, 0, ErrMalformedTable
	}

	return blocks.Table{
		ColumnCount:  len(rows[0]),
		HasHeaderRow: true,
		Rows:         rows,
	}, i, nil
}

func splitTableRow(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

func createBookmark(line string) blocks.Block {
	matches := bookmarkPattern.FindStringSubmatch(line)
	if matches == nil {
		return blocks.Unsupported{}
	}
	return blocks.Bookmark{URL: matches[2]}
}

func createImage(line string) blocks.Block {
	matches := imagePattern.FindStringSubmatch(line)
	if matches == nil {
		return createBookmark(line)
	}
	return blocks.Image{URL: matches[2]}
}

func createEquation(line string) blocks.Block {
	return blocks.Equation{Expression: strings.Trim(strings.TrimSpace(line), "$")}
}

func createParagraph(line string) blocks.Block {
	return blocks.Paragraph{RichText: plainRun(line)}
}
