package blocks

// Block is one structural unit of a journal page. The set of cases is closed:
// only types in this package implement it.
type Block interface {
	kind() Kind
}

// Kind names the active case of a Block
type Kind string

const (
	KindHeading          Kind = "heading"
	KindParagraph        Kind = "paragraph"
	KindBulletedListItem Kind = "bulleted_list_item"
	KindNumberedListItem Kind = "numbered_list_item"
	KindToDo             Kind = "to_do"
	KindToggle           Kind = "toggle"
	KindCode             Kind = "code"
	KindQuote            Kind = "quote"
	KindCallout          Kind = "callout"
	KindDivider          Kind = "divider"
	KindTable            Kind = "table"
	KindBookmark         Kind = "bookmark"
	KindImage            Kind = "image"
	KindEquation         Kind = "equation"
	KindUnsupported      Kind = "unsupported"
)

// KindOf returns the case name of b, or "" for nil
func KindOf(b Block) Kind {
	if b == nil {
		return ""
	}
	return b.kind()
}

// Heading is a level 1-3 heading
type Heading struct {
	Level    int
	RichText []RichText
}

// Paragraph is a run of body text
type Paragraph struct {
	RichText []RichText
	Children []Block
}

// BulletedListItem is a "- " list entry
type BulletedListItem struct {
	RichText []RichText
	Children []Block
}

// NumberedListItem is an ordered list entry. Position is not stored.
type NumberedListItem struct {
	RichText []RichText
	Children []Block
}

// ToDo is a checkbox item
type ToDo struct {
	RichText []RichText
	Checked  bool
	Children []Block
}

// Toggle is a summary line with collapsible children
type Toggle struct {
	RichText []RichText
	Children []Block
}

// Code is a fenced code block. Each run holds one source line.
type Code struct {
	RichText []RichText
	Language CodeLanguage
}

// Quote is a block quote
type Quote struct {
	RichText []RichText
	Children []Block
}

// Callout is a highlighted note with an optional emoji icon.
// Icon is empty when the remote icon is a file rather than an emoji.
type Callout struct {
	Icon     string
	RichText []RichText
}

// Divider is a horizontal rule
type Divider struct{}

// Table holds the table shape and, when known, its cell text row by row
type Table struct {
	ColumnCount     int
	HasHeaderRow    bool
	HasHeaderColumn bool
	Rows            [][]string
}

// Bookmark is a link preview
type Bookmark struct {
	URL string
}

// Image is an externally hosted image
type Image struct {
	URL string
}

// Equation is a block-level LaTeX expression
type Equation struct {
	Expression string
}

// Unsupported stands in for any remote block without a markdown mapping.
// Type keeps the remote type name for logging only.
type Unsupported struct {
	Type string
}

func (Heading) kind() Kind          { return KindHeading }
func (Paragraph) kind() Kind        { return KindParagraph }
func (BulletedListItem) kind() Kind { return KindBulletedListItem }
func (NumberedListItem) kind() Kind { return KindNumberedListItem }
func (ToDo) kind() Kind             { return KindToDo }
func (Toggle) kind() Kind           { return KindToggle }
func (Code) kind() Kind             { return KindCode }
func (Quote) kind() Kind            { return KindQuote }
func (Callout) kind() Kind          { return KindCallout }
func (Divider) kind() Kind          { return KindDivider }
func (Table) kind() Kind            { return KindTable }
func (Bookmark) kind() Kind         { return KindBookmark }
func (Image) kind() Kind            { return KindImage }
func (Equation) kind() Kind         { return KindEquation }
func (Unsupported) kind() Kind      { return KindUnsupported }

// Children returns the nested blocks of b, if its case can own any
func Children(b Block) []Block {
	switch v := b.(type) {
	case Paragraph:
		return v.Children
	case BulletedListItem:
		return v.Children
	case NumberedListItem:
		return v.Children
	case ToDo:
		return v.Children
	case Toggle:
		return v.Children
	case Quote:
		return v.Children
	}
	return nil
}

// TextOf returns the rich text of b. Divider, Table, Bookmark, Image,
// Equation and Unsupported have none.
func TextOf(b Block) []RichText {
	switch v := b.(type) {
	case Heading:
		return v.RichText
	case Paragraph:
		return v.RichText
	case BulletedListItem:
		return v.RichText
	case NumberedListItem:
		return v.RichText
	case ToDo:
		return v.RichText
	case Toggle:
		return v.RichText
	case Code:
		return v.RichText
	case Quote:
		return v.RichText
	case Callout:
		return v.RichText
	}
	return nil
}

// CountUnsupported walks blocks and their children and counts Unsupported cases
func CountUnsupported(bs []Block) int {
	n := 0
	for _, b := range bs {
		if _, ok := b.(Unsupported); ok {
			n++
		}
		n += CountUnsupported(Children(b))
	}
	return n
}
