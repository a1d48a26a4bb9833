package notion

import (
	"github.com/gerunddev/journalbridge/internal/blocks"
)

// FromBlocks converts blocks to their wire form. Unsupported blocks have
// no wire form and are skipped.
func FromBlocks(bs []blocks.Block) []Block {
	out := make([]Block, 0, len(bs))
	for _, b := range bs {
		if wire, ok := FromBlock(b); ok {
			out = append(out, wire)
		}
	}
	return out
}

// FromBlock converts one block. It reports false for Unsupported and nil.
func FromBlock(b blocks.Block) (Block, bool) {
	switch v := b.(type) {
	case blocks.Heading:
		payload := &HeadingBlock{RichText: fromRichText(v.RichText)}
		switch v.Level {
		case 2:
			return Block{Object: "block", Type: TypeHeading2, Heading2: payload}, true
		case 3:
			return Block{Object: "block", Type: TypeHeading3, Heading3: payload}, true
		}
		return Block{Object: "block", Type: TypeHeading1, Heading1: payload}, true
	case blocks.Paragraph:
		return textBlock(TypeParagraph, v.RichText, v.Children), true
	case blocks.BulletedListItem:
		return textBlock(TypeBulletedListItem, v.RichText, v.Children), true
	case blocks.NumberedListItem:
		return textBlock(TypeNumberedListItem, v.RichText, v.Children), true
	case blocks.Toggle:
		return textBlock(TypeToggle, v.RichText, v.Children), true
	case blocks.Quote:
		return textBlock(TypeQuote, v.RichText, v.Children), true
	case blocks.ToDo:
		children := FromBlocks(v.Children)
		return Block{
			Object:      "block",
			Type:        TypeToDo,
			HasChildren: len(children) > 0,
			ToDo: &ToDoBlock{
				RichText: fromRichText(v.RichText),
				Checked:  v.Checked,
				Children: children,
			},
		}, true
	case blocks.Code:
		return Block{
			Object: "block",
			Type:   TypeCode,
			Code: &CodeBlock{
				RichText: fromRichText(v.RichText),
				Caption:  []RichText{},
				Language: v.Language.APIName(),
			},
		}, true
	case blocks.Callout:
		callout := &CalloutBlock{RichText: fromRichText(v.RichText)}
		if v.Icon != "" {
			callout.Icon = &Icon{Type: "emoji", Emoji: v.Icon}
		}
		return Block{Object: "block", Type: TypeCallout, Callout: callout}, true
	case blocks.Divider:
		return Block{Object: "block", Type: TypeDivider, Divider: &Empty{}}, true
	case blocks.Table:
		return fromTable(v), true
	case blocks.Bookmark:
		return Block{
			Object:   "block",
			Type:     TypeBookmark,
			Bookmark: &BookmarkBlock{URL: v.URL, Caption: []RichText{}},
		}, true
	case blocks.Image:
		return Block{
			Object: "block",
			Type:   TypeImage,
			Image:  &FileBlock{Type: "external", External: &ExternalFile{URL: v.URL}},
		}, true
	case blocks.Equation:
		return Block{Object: "block", Type: TypeEquation, Equation: &Equation{Expression: v.Expression}}, true
	}
	return Block{}, false
}

func textBlock(typ string, rt []blocks.RichText, children []blocks.Block) Block {
	payload := &TextBlock{
		RichText: fromRichText(rt),
		Children: FromBlocks(children),
	}
	b := Block{Object: "block", Type: typ, HasChildren: len(payload.Children) > 0}
	switch typ {
	case TypeParagraph:
		b.Paragraph = payload
	case TypeBulletedListItem:
		b.BulletedListItem = payload
	case TypeNumberedListItem:
		b.NumberedListItem = payload
	case TypeToggle:
		b.Toggle = payload
	case TypeQuote:
		b.Quote = payload
	}
	return b
}

// fromTable emits one table_row per row. The remote store requires every
// row to be exactly table_width cells wide, so short rows are padded and
// long rows cut.
func fromTable(t blocks.Table) Block {
	rows := make([]Block, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([][]RichText, t.ColumnCount)
		for i := range cells {
			cells[i] = []RichText{}
			if i < len(row) {
				cells[i] = fromRichText([]blocks.RichText{blocks.Plain(row[i])})
			}
		}
		rows = append(rows, Block{Object: "block", Type: TypeTableRow, TableRow: &TableRowBlock{Cells: cells}})
	}

	return Block{
		Object:      "block",
		Type:        TypeTable,
		HasChildren: len(rows) > 0,
		Table: &TableBlock{
			TableWidth:      t.ColumnCount,
			HasColumnHeader: t.HasHeaderRow,
			HasRowHeader:    t.HasHeaderColumn,
			Children:        rows,
		},
	}
}

func fromRichText(runs []blocks.RichText) []RichText {
	out := make([]RichText, 0, len(runs))
	for _, r := range runs {
		wire := RichText{
			Type:      string(r.Type),
			PlainText: r.PlainText,
			Href:      r.Href,
		}
		if r.Annotations != (blocks.Annotations{}) {
			wire.Annotations = &Annotations{
				Bold:          r.Annotations.Bold,
				Italic:        r.Annotations.Italic,
				Strikethrough: r.Annotations.Strikethrough,
				Code:          r.Annotations.Code,
				Color:         "default",
			}
		}

		switch r.Type {
		case blocks.RichTextMention:
			wire.Mention = map[string]any{}
		case blocks.RichTextEquation:
			wire.Equation = &Equation{Expression: r.PlainText}
		default:
			wire.Type = string(blocks.RichTextText)
			wire.Text = &Text{Content: r.Content}
			if r.Link != "" {
				wire.Text.Link = &Link{URL: r.Link}
			}
			if wire.PlainText == "" {
				wire.PlainText = r.Content
			}
		}
		out = append(out, wire)
	}
	return out
}

// ToBlocks converts wire blocks as returned by the remote store. Types
// without a mapping become blocks.Unsupported.
func ToBlocks(wire []Block) []blocks.Block {
	out := make([]blocks.Block, 0, len(wire))
	for _, w := range wire {
		out = append(out, ToBlock(w))
	}
	return out
}

// ToBlock converts one wire block
func ToBlock(w Block) blocks.Block {
	switch {
	case w.Type == TypeHeading1 && w.Heading1 != nil:
		return blocks.Heading{Level: 1, RichText: toRichText(w.Heading1.RichText)}
	case w.Type == TypeHeading2 && w.Heading2 != nil:
		return blocks.Heading{Level: 2, RichText: toRichText(w.Heading2.RichText)}
	case w.Type == TypeHeading3 && w.Heading3 != nil:
		return blocks.Heading{Level: 3, RichText: toRichText(w.Heading3.RichText)}
	case w.Type == TypeParagraph && w.Paragraph != nil:
		return blocks.Paragraph{RichText: toRichText(w.Paragraph.RichText), Children: toChildren(w.Paragraph.Children)}
	case w.Type == TypeBulletedListItem && w.BulletedListItem != nil:
		p := w.BulletedListItem
		return blocks.BulletedListItem{RichText: toRichText(p.RichText), Children: toChildren(p.Children)}
	case w.Type == TypeNumberedListItem && w.NumberedListItem != nil:
		p := w.NumberedListItem
		return blocks.NumberedListItem{RichText: toRichText(p.RichText), Children: toChildren(p.Children)}
	case w.Type == TypeToggle && w.Toggle != nil:
		return blocks.Toggle{RichText: toRichText(w.Toggle.RichText), Children: toChildren(w.Toggle.Children)}
	case w.Type == TypeQuote && w.Quote != nil:
		return blocks.Quote{RichText: toRichText(w.Quote.RichText), Children: toChildren(w.Quote.Children)}
	case w.Type == TypeToDo && w.ToDo != nil:
		return blocks.ToDo{
			RichText: toRichText(w.ToDo.RichText),
			Checked:  w.ToDo.Checked,
			Children: toChildren(w.ToDo.Children),
		}
	case w.Type == TypeCode && w.Code != nil:
		lang, ok := blocks.ParseCodeLanguageAPIName(w.Code.Language)
		if !ok {
			lang = blocks.PlainText
		}
		return blocks.Code{RichText: toRichText(w.Code.RichText), Language: lang}
	case w.Type == TypeCallout && w.Callout != nil:
		icon := ""
		if w.Callout.Icon != nil && w.Callout.Icon.Type == "emoji" {
			icon = w.Callout.Icon.Emoji
		}
		return blocks.Callout{Icon: icon, RichText: toRichText(w.Callout.RichText)}
	case w.Type == TypeDivider:
		return blocks.Divider{}
	case w.Type == TypeTable && w.Table != nil:
		return toTable(w.Table)
	case w.Type == TypeBookmark && w.Bookmark != nil:
		return blocks.Bookmark{URL: w.Bookmark.URL}
	case w.Type == TypeImage && w.Image != nil:
		return blocks.Image{URL: fileURL(w.Image)}
	case w.Type == TypeEquation && w.Equation != nil:
		return blocks.Equation{Expression: w.Equation.Expression}
	}
	return blocks.Unsupported{Type: w.Type}
}

func toChildren(wire []Block) []blocks.Block {
	if len(wire) == 0 {
		return nil
	}
	return ToBlocks(wire)
}

func toTable(t *TableBlock) blocks.Table {
	table := blocks.Table{
		ColumnCount:     t.TableWidth,
		HasHeaderRow:    t.HasColumnHeader,
		HasHeaderColumn: t.HasRowHeader,
	}
	for _, child := range t.Children {
		if child.Type != TypeTableRow || child.TableRow == nil {
			continue
		}
		row := make([]string, 0, len(child.TableRow.Cells))
		for _, cell := range child.TableRow.Cells {
			row = append(row, blocks.JoinPlainText(toRichText(cell)))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func fileURL(f *FileBlock) string {
	if f.External != nil {
		return f.External.URL
	}
	if f.File != nil {
		return f.File.URL
	}
	return ""
}

func toRichText(wire []RichText) []blocks.RichText {
	if len(wire) == 0 {
		return nil
	}
	out := make([]blocks.RichText, 0, len(wire))
	for _, w := range wire {
		r := blocks.RichText{
			Type:      blocks.RichTextType(w.Type),
			PlainText: w.PlainText,
			Href:      w.Href,
		}
		if w.Annotations != nil {
			r.Annotations = blocks.Annotations{
				Bold:          w.Annotations.Bold,
				Italic:        w.Annotations.Italic,
				Strikethrough: w.Annotations.Strikethrough,
				Code:          w.Annotations.Code,
			}
		}

		switch w.Type {
		case string(blocks.RichTextMention):
		case string(blocks.RichTextEquation):
			if r.PlainText == "" && w.Equation != nil {
				r.PlainText = w.Equation.Expression
			}
		default:
			r.Type = blocks.RichTextText
			if w.Text != nil {
				r.Content = w.Text.Content
				if w.Text.Link != nil {
					r.Link = w.Text.Link.URL
				}
			} else {
				r.Content = w.PlainText
			}
		}
		out = append(out, r)
	}
	return out
}

// AssignIDs gives every block without an ID, and all of its nested blocks,
// a fresh ID from newID
func AssignIDs(wire []Block, newID func() string) {
	for i := range wire {
		if wire[i].ID == "" {
			wire[i].ID = newID()
		}
		AssignIDs(wireChildren(&wire[i]), newID)
	}
}

// wireChildren returns the nested blocks of b; the slice aliases b's payload
func wireChildren(b *Block) []Block {
	switch {
	case b.Paragraph != nil:
		return b.Paragraph.Children
	case b.BulletedListItem != nil:
		return b.BulletedListItem.Children
	case b.NumberedListItem != nil:
		return b.NumberedListItem.Children
	case b.Toggle != nil:
		return b.Toggle.Children
	case b.Quote != nil:
		return b.Quote.Children
	case b.ToDo != nil:
		return b.ToDo.Children
	case b.Table != nil:
		return b.Table.Children
	}
	return nil
}

// CountBlocks counts blocks including nested ones
func CountBlocks(wire []Block) int {
	n := len(wire)
	for i := range wire {
		n += CountBlocks(wireChildren(&wire[i]))
	}
	return n
}
