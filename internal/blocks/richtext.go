package blocks

import "strings"

// RichTextType distinguishes plain text runs from mentions and inline equations
type RichTextType string

const (
	RichTextText     RichTextType = "text"
	RichTextMention  RichTextType = "mention"
	RichTextEquation RichTextType = "equation"
)

// Annotations are independent emphasis flags on a run
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Code          bool
}

// RichText is one span of a block's text. Content and Link apply to text
// runs; mentions and equations carry only PlainText. Href is the inline
// reference the remote store attaches to any run.
type RichText struct {
	Type        RichTextType
	Content     string
	Annotations Annotations
	Link        string
	Href        string
	PlainText   string
}

// Plain builds an unannotated text run
func Plain(content string) RichText {
	return RichText{
		Type:      RichTextText,
		Content:   content,
		PlainText: content,
	}
}

// Mention builds a mention run rendered as its plain text
func Mention(plain string) RichText {
	return RichText{Type: RichTextMention, PlainText: plain}
}

// InlineEquation builds an inline equation run
func InlineEquation(expression string) RichText {
	return RichText{Type: RichTextEquation, PlainText: expression}
}

// IsPlain reports whether the run has no annotations and no link
func (r RichText) IsPlain() bool {
	return r.Annotations == (Annotations{}) && r.Link == "" && r.Href == ""
}

// JoinPlainText concatenates the visible text of runs without any markup
func JoinPlainText(runs []RichText) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Type == RichTextText || r.Type == "" {
			b.WriteString(r.Content)
			continue
		}
		b.WriteString(r.PlainText)
	}
	return b.String()
}
