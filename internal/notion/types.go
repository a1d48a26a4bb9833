package notion

// Block types of the remote block schema
const (
	TypeParagraph        = "paragraph"
	TypeHeading1         = "heading_1"
	TypeHeading2         = "heading_2"
	TypeHeading3         = "heading_3"
	TypeBulletedListItem = "bulleted_list_item"
	TypeNumberedListItem = "numbered_list_item"
	TypeToDo             = "to_do"
	TypeToggle           = "toggle"
	TypeCode             = "code"
	TypeQuote            = "quote"
	TypeCallout          = "callout"
	TypeDivider          = "divider"
	TypeTable            = "table"
	TypeTableRow         = "table_row"
	TypeBookmark         = "bookmark"
	TypeImage            = "image"
	TypeEquation         = "equation"
)

// Block is a block object as the remote store sends and accepts it.
// Exactly one payload field matching Type is set.
type Block struct {
	Object      string `json:"object,omitempty" yaml:"object,omitempty"`
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Type        string `json:"type" yaml:"type"`
	HasChildren bool   `json:"has_children,omitempty" yaml:"has_children,omitempty"`

	Paragraph        *TextBlock     `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
	Heading1         *HeadingBlock  `json:"heading_1,omitempty" yaml:"heading_1,omitempty"`
	Heading2         *HeadingBlock  `json:"heading_2,omitempty" yaml:"heading_2,omitempty"`
	Heading3         *HeadingBlock  `json:"heading_3,omitempty" yaml:"heading_3,omitempty"`
	BulletedListItem *TextBlock     `json:"bulleted_list_item,omitempty" yaml:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock     `json:"numbered_list_item,omitempty" yaml:"numbered_list_item,omitempty"`
	ToDo             *ToDoBlock     `json:"to_do,omitempty" yaml:"to_do,omitempty"`
	Toggle           *TextBlock     `json:"toggle,omitempty" yaml:"toggle,omitempty"`
	Code             *CodeBlock     `json:"code,omitempty" yaml:"code,omitempty"`
	Quote            *TextBlock     `json:"quote,omitempty" yaml:"quote,omitempty"`
	Callout          *CalloutBlock  `json:"callout,omitempty" yaml:"callout,omitempty"`
	Divider          *Empty         `json:"divider,omitempty" yaml:"divider,omitempty"`
	Table            *TableBlock    `json:"table,omitempty" yaml:"table,omitempty"`
	TableRow         *TableRowBlock `json:"table_row,omitempty" yaml:"table_row,omitempty"`
	Bookmark         *BookmarkBlock `json:"bookmark,omitempty" yaml:"bookmark,omitempty"`
	Image            *FileBlock     `json:"image,omitempty" yaml:"image,omitempty"`
	Equation         *Equation      `json:"equation,omitempty" yaml:"equation,omitempty"`
}

// Empty is the payload of blocks without fields, such as dividers
type Empty struct{}

// TextBlock is the payload shared by paragraphs, list items, toggles and quotes
type TextBlock struct {
	RichText []RichText `json:"rich_text" yaml:"rich_text"`
	Color    string     `json:"color,omitempty" yaml:"color,omitempty"`
	Children []Block    `json:"children,omitempty" yaml:"children,omitempty"`
}

type HeadingBlock struct {
	RichText     []RichText `json:"rich_text" yaml:"rich_text"`
	Color        string     `json:"color,omitempty" yaml:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty" yaml:"is_toggleable,omitempty"`
}

type ToDoBlock struct {
	RichText []RichText `json:"rich_text" yaml:"rich_text"`
	Checked  bool       `json:"checked" yaml:"checked"`
	Color    string     `json:"color,omitempty" yaml:"color,omitempty"`
	Children []Block    `json:"children,omitempty" yaml:"children,omitempty"`
}

type CodeBlock struct {
	RichText []RichText `json:"rich_text" yaml:"rich_text"`
	Caption  []RichText `json:"caption" yaml:"caption"`
	Language string     `json:"language" yaml:"language"`
}

type CalloutBlock struct {
	RichText []RichText `json:"rich_text" yaml:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color    string     `json:"color,omitempty" yaml:"color,omitempty"`
}

// Icon is either an emoji or a hosted file
type Icon struct {
	Type     string        `json:"type" yaml:"type"`
	Emoji    string        `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	External *ExternalFile `json:"external,omitempty" yaml:"external,omitempty"`
	File     *ExternalFile `json:"file,omitempty" yaml:"file,omitempty"`
}

type TableBlock struct {
	TableWidth      int     `json:"table_width" yaml:"table_width"`
	HasColumnHeader bool    `json:"has_column_header" yaml:"has_column_header"`
	HasRowHeader    bool    `json:"has_row_header" yaml:"has_row_header"`
	Children        []Block `json:"children,omitempty" yaml:"children,omitempty"`
}

type TableRowBlock struct {
	Cells [][]RichText `json:"cells" yaml:"cells"`
}

type BookmarkBlock struct {
	URL     string     `json:"url" yaml:"url"`
	Caption []RichText `json:"caption" yaml:"caption"`
}

// FileBlock is an image payload, hosted externally or by the remote store
type FileBlock struct {
	Type     string        `json:"type" yaml:"type"`
	External *ExternalFile `json:"external,omitempty" yaml:"external,omitempty"`
	File     *ExternalFile `json:"file,omitempty" yaml:"file,omitempty"`
}

type ExternalFile struct {
	URL string `json:"url" yaml:"url"`
}

type Equation struct {
	Expression string `json:"expression" yaml:"expression"`
}

// RichText is a rich text object of the remote schema
type RichText struct {
	Type        string         `json:"type" yaml:"type"`
	Text        *Text          `json:"text,omitempty" yaml:"text,omitempty"`
	Mention     map[string]any `json:"mention,omitempty" yaml:"mention,omitempty"`
	Equation    *Equation      `json:"equation,omitempty" yaml:"equation,omitempty"`
	Annotations *Annotations   `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	PlainText   string         `json:"plain_text,omitempty" yaml:"plain_text,omitempty"`
	Href        string         `json:"href,omitempty" yaml:"href,omitempty"`
}

type Text struct {
	Content string `json:"content" yaml:"content"`
	Link    *Link  `json:"link,omitempty" yaml:"link,omitempty"`
}

type Link struct {
	URL string `json:"url" yaml:"url"`
}

type Annotations struct {
	Bold          bool   `json:"bold" yaml:"bold"`
	Italic        bool   `json:"italic" yaml:"italic"`
	Strikethrough bool   `json:"strikethrough" yaml:"strikethrough"`
	Underline     bool   `json:"underline" yaml:"underline"`
	Code          bool   `json:"code" yaml:"code"`
	Color         string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Page is one journal day as the remote store holds it
type Page struct {
	Object   string  `json:"object" yaml:"object"`
	ID       string  `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Children []Block `json:"children" yaml:"children"`
}
