package convert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gerunddev/journalbridge/internal/blocks"
)

func TestLineClassificationPriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected blocks.Kind
	}{
		{"level 1 heading", "# Morning", blocks.KindHeading},
		{"level 3 heading", "### Notes", blocks.KindHeading},
		{"level 4 is not a heading", "#### Deep", blocks.KindParagraph},
		{"hash without space", "#tag", blocks.KindParagraph},
		{"unchecked to-do", "- [ ] buy milk", blocks.KindToDo},
		{"checked to-do", "- [x] done", blocks.KindToDo},
		{"uppercase X is a bullet", "- [X] done", blocks.KindBulletedListItem},
		{"bullet", "- eggs", blocks.KindBulletedListItem},
		{"bullet wins over equation", "- $x$", blocks.KindBulletedListItem},
		{"dash without space", "-eggs", blocks.KindParagraph},
		{"numbered", "1. first", blocks.KindNumberedListItem},
		{"numbered with quote marker", "1. > nested", blocks.KindNumberedListItem},
		{"digit without dot-space", "3.14 is pi", blocks.KindParagraph},
		{"quote", "> wise words", blocks.KindQuote},
		{"quote without space", ">nope", blocks.KindParagraph},
		{"code fence", "```", blocks.KindCode},
		{"divider", "---", blocks.KindDivider},
		{"long divider", "-----", blocks.KindDivider},
		{"single pipe line", "|a|b|", blocks.KindParagraph},
		{"image without ]: is unsupported", "![logo](https://example.com/logo.png)", blocks.KindUnsupported},
		{"reference link", "[home]: https://example.com", blocks.KindBookmark},
		{"equation", "$E=mc^2$", blocks.KindEquation},
		{"padded equation", "  $$a+b$$  ", blocks.KindEquation},
		{"plain text", "Slept well.", blocks.KindParagraph},
		{"empty line", "", blocks.KindParagraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LinesToBlocks([]string{tt.input})
			if err != nil {
				t.Fatalf("LinesToBlocks(%q) failed: %v", tt.input, err)
			}
			if len(result) != 1 {
				t.Fatalf("LinesToBlocks(%q) returned %d blocks, want 1", tt.input, len(result))
			}
			if kind := blocks.KindOf(result[0]); kind != tt.expected {
				t.Errorf("LinesToBlocks(%q) = %s, want %s", tt.input, kind, tt.expected)
			}
		})
	}
}

func TestSingleLineBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected blocks.Block
	}{
		{
			name:     "heading",
			input:    "## 09:30",
			expected: blocks.Heading{Level: 2, RichText: []blocks.RichText{blocks.Plain("09:30")}},
		},
		{
			name:     "heading keeps inner hashes",
			input:    "# #gratitude",
			expected: blocks.Heading{Level: 1, RichText: []blocks.RichText{blocks.Plain("#gratitude")}},
		},
		{
			name:     "unchecked to-do",
			input:    "- [ ] buy milk",
			expected: blocks.ToDo{RichText: []blocks.RichText{blocks.Plain("buy milk")}},
		},
		{
			name:     "checked to-do keeps leading x of content",
			input:    "- [x] xylophone lesson",
			expected: blocks.ToDo{RichText: []blocks.RichText{blocks.Plain("xylophone lesson")}, Checked: true},
		},
		{
			name:     "bullet",
			input:    "- coffee",
			expected: blocks.BulletedListItem{RichText: []blocks.RichText{blocks.Plain("coffee")}},
		},
		{
			name:     "numbered",
			input:    "12. twelfth",
			expected: blocks.NumberedListItem{RichText: []blocks.RichText{blocks.Plain("twelfth")}},
		},
		{
			name:     "numbered keeps numbers in content",
			input:    "1. 2024 was good",
			expected: blocks.NumberedListItem{RichText: []blocks.RichText{blocks.Plain("2024 was good")}},
		},
		{
			name:     "quote",
			input:    "> stay curious",
			expected: blocks.Quote{RichText: []blocks.RichText{blocks.Plain("stay curious")}},
		},
		{
			name:     "bookmark",
			input:    "[docs]:   https://developers.notion.com",
			expected: blocks.Bookmark{URL: "https://developers.notion.com"},
		},
		{
			name:     "equation strips all dollar delimiters",
			input:    " $$\\int x dx$$ ",
			expected: blocks.Equation{Expression: "\\int x dx"},
		},
		{
			name:     "paragraph keeps inline markup verbatim",
			input:    "A **bold** and _quiet_ day",
			expected: blocks.Paragraph{RichText: []blocks.RichText{blocks.Plain("A **bold** and _quiet_ day")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LinesToBlocks([]string{tt.input})
			if err != nil {
				t.Fatalf("LinesToBlocks(%q) failed: %v", tt.input, err)
			}
			if len(result) != 1 || !reflect.DeepEqual(result[0], tt.expected) {
				t.Errorf("LinesToBlocks(%q) = %#v, want %#v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEncoderNeverAnnotates(t *testing.T) {
	md := "# **Bold** heading\n- *italic* item\n[link](https://example.com) and `code`\n~~struck~~"

	result, err := MarkdownToBlocks(md)
	if err != nil {
		t.Fatalf("MarkdownToBlocks failed: %v", err)
	}

	for _, b := range result {
		for _, run := range blocks.TextOf(b) {
			if !run.IsPlain() {
				t.Errorf("Expected plain run, got %#v", run)
			}
		}
	}
}

func TestCodeBlock(t *testing.T) {
	result, err := LinesToBlocks([]string{"```rust", "fn main() {}", "```"})
	if err != nil {
		t.Fatalf("LinesToBlocks failed: %v", err)
	}

	expected := []blocks.Block{
		blocks.Code{
			RichText: []blocks.RichText{blocks.Plain("fn main() {}")},
			Language: blocks.Rust,
		},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Got %#v, want %#v", result, expected)
	}
}

func TestCodeBlockConsumption(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		blocks    int
		language  blocks.CodeLanguage
		bodyLines int
	}{
		{
			name:      "fence consumes inner markdown",
			lines:     []string{"```Python ", "# not a heading", "- not a bullet", "```", "after"},
			blocks:    2,
			language:  blocks.Python,
			bodyLines: 2,
		},
		{
			name:      "unterminated fence runs to end",
			lines:     []string{"```go", "package main", "func main() {}"},
			blocks:    1,
			language:  blocks.Go,
			bodyLines: 2,
		},
		{
			name:      "unknown language falls back to plain text",
			lines:     []string{"```brainfuck", "+++", "```"},
			blocks:    1,
			language:  blocks.PlainText,
			bodyLines: 1,
		},
		{
			name:      "empty body",
			lines:     []string{"```", "```"},
			blocks:    1,
			language:  blocks.PlainText,
			bodyLines: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LinesToBlocks(tt.lines)
			if err != nil {
				t.Fatalf("LinesToBlocks failed: %v", err)
			}
			if len(result) != tt.blocks {
				t.Fatalf("Expected %d blocks, got %d: %#v", tt.blocks, len(result), result)
			}
			code, ok := result[0].(blocks.Code)
			if !ok {
				t.Fatalf("Expected Code block, got %T", result[0])
			}
			if code.Language != tt.language {
				t.Errorf("Language = %v, want %v", code.Language, tt.language)
			}
			if len(code.RichText) != tt.bodyLines {
				t.Errorf("Expected %d body runs, got %d", tt.bodyLines, len(code.RichText))
			}
		})
	}
}

func TestTable(t *testing.T) {
	result, err := LinesToBlocks([]string{"|a|b|", "|1|2|"})
	if err != nil {
		t.Fatalf("LinesToBlocks failed: %v", err)
	}

	expected := []blocks.Block{
		blocks.Table{
			ColumnCount:  2,
			HasHeaderRow: true,
			Rows:         [][]string{{"a", "b"}, {"1", "2"}},
		},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Got %#v, want %#v", result, expected)
	}
}

func TestTableConsumesContiguousRows(t *testing.T) {
	lines := []string{
		"| Meal | Time |",
		"|------|------|",
		"| Lunch |  |",
		"Ate well.",
		"| lone |",
	}

	result, err := LinesToBlocks(lines)
	if err != nil {
		t.Fatalf("LinesToBlocks failed: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("Expected 3 blocks, got %d: %#v", len(result), result)
	}

	table, ok := result[0].(blocks.Table)
	if !ok {
		t.Fatalf("Expected Table, got %T", result[0])
	}
	if table.ColumnCount != 2 {
		t.Errorf("ColumnCount = %d, want 2", table.ColumnCount)
	}
	if len(table.Rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(table.Rows))
	}
	if !reflect.DeepEqual(table.Rows[2], []string{"Lunch"}) {
		t.Errorf("Empty cells should be dropped, got %q", table.Rows[2])
	}

	// a single pipe line is not a table
	if kind := blocks.KindOf(result[2]); kind != blocks.KindParagraph {
		t.Errorf("Trailing pipe line = %s, want paragraph", kind)
	}
}

func TestParseTableWithoutRows(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no lines", nil},
		{"no pipe lines", []string{"not a row"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, consumed, err := ParseTable(tt.lines)
			if !errors.Is(err, ErrMalformedTable) {
				t.Errorf("Expected ErrMalformedTable, got %v", err)
			}
			if consumed != 0 {
				t.Errorf("Expected 0 consumed lines, got %d", consumed)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, md := range []string{"", "\n"} {
		result, err := MarkdownToBlocks(md)
		if err != nil {
			t.Fatalf("MarkdownToBlocks(%q) failed: %v", md, err)
		}
		expected := len(SplitLines(md))
		if len(result) != expected {
			t.Errorf("MarkdownToBlocks(%q) returned %d blocks, want %d", md, len(result), expected)
		}
	}
}

func TestImageBlocksOption(t *testing.T) {
	line := "![sunrise](https://example.com/sunrise.jpg)"

	result, err := NewEncoder().LinesToBlocks([]string{line})
	if err != nil {
		t.Fatalf("LinesToBlocks failed: %v", err)
	}
	if _, ok := result[0].(blocks.Unsupported); !ok {
		t.Errorf("Default encoder should route images through the bookmark rule, got %#v", result[0])
	}

	result, err = NewEncoder(WithImageBlocks()).LinesToBlocks([]string{line})
	if err != nil {
		t.Fatalf("LinesToBlocks failed: %v", err)
	}
	expected := blocks.Image{URL: "https://example.com/sunrise.jpg"}
	if !reflect.DeepEqual(result[0], expected) {
		t.Errorf("Got %#v, want %#v", result[0], expected)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}

	for _, tt := range tests {
		if got := SplitLines(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestEveryLineConsumed(t *testing.T) {
	md := "# 2026-10-16\n\n## 08:00\n- [ ] run\n- [x] stretch\n```bash\nls\n```\n| a | b |\n| 1 | 2 |\n---\nEnd."

	result, err := MarkdownToBlocks(md)
	if err != nil {
		t.Fatalf("MarkdownToBlocks failed: %v", err)
	}

	kinds := make([]blocks.Kind, len(result))
	for i, b := range result {
		kinds[i] = blocks.KindOf(b)
	}
	expected := []blocks.Kind{
		blocks.KindHeading,
		blocks.KindParagraph,
		blocks.KindHeading,
		blocks.KindToDo,
		blocks.KindToDo,
		blocks.KindCode,
		blocks.KindTable,
		blocks.KindDivider,
		blocks.KindParagraph,
	}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("Kinds = %v, want %v", kinds, expected)
	}
}
