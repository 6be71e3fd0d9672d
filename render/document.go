// Package render maps (template id, form values) to a visual document.
// Purely presentational; the only arithmetic is per-template formatting
// such as the fuel line subtotal.
package render

// BlockKind - closed set of visual block shapes the exporters know how
// to draw.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockSectionTitle
	BlockParagraph
	BlockRow   // label left, value right
	BlockItem  // name + detail left, amount right
	BlockTotal // emphasized label/amount pair
	BlockDivider
	BlockNote // small print
	BlockSpacer
)

func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockSectionTitle:
		return "section"
	case BlockParagraph:
		return "paragraph"
	case BlockRow:
		return "row"
	case BlockItem:
		return "item"
	case BlockTotal:
		return "total"
	case BlockDivider:
		return "divider"
	case BlockNote:
		return "note"
	default:
		return "spacer"
	}
}

// Span - inline run of paragraph text, optionally emphasized.
type Span struct {
	Text string
	Bold bool
}

// Block - one drawable unit. Which fields matter depends on Kind.
type Block struct {
	Kind     BlockKind
	Text     string // Title, SectionTitle, Note
	Spans    []Span // Paragraph
	Label    string // Row, Total
	Value    string // Row
	Detail   string // Item second line
	Amount   string // Item, Total
	Muted    bool
	Negative bool // discount-style rows
}

// Document - the rendered preview. Exporters consume it directly; the
// HTML preview walks the same blocks.
type Document struct {
	TemplateID  string
	Title       string
	ExactBounds bool    // size output to content, no page margin
	Dark        bool    // dark background fill
	PageWidthPx float64 // layout width the exporters scale from
	Blocks      []Block
}

func paragraph(spans ...Span) Block {
	return Block{Kind: BlockParagraph, Spans: spans}
}

func row(label string, value string) Block {
	return Block{Kind: BlockRow, Label: label, Value: value}
}

func note(text string) Block {
	return Block{Kind: BlockNote, Text: text, Muted: true}
}
