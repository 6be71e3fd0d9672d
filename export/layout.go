package export

import (
	"strings"

	"github.com/zeptools/billgen/render"
)

// Layout coordinates are CSS pixels at 96 DPI. Drawing backends scale
// to their own units (mm for PDF, 2x device pixels for raster).
const (
	pxToMM = 0.264583

	pageMargin   = 40.0
	exactPadding = 24.0

	titleSize   = 22.0
	sectionSize = 14.0
	bodySize    = 12.0
	rowSize     = 11.5
	noteSize    = 9.5

	lineGap    = 1.45 // line height multiplier
	blockGap   = 8.0
	sectionGap = 14.0
)

type rgb struct{ r, g, b int }

type palette struct {
	background rgb
	text       rgb
	muted      rgb
	rule       rgb
	negative   rgb
}

var (
	lightPalette = palette{
		background: rgb{255, 255, 255},
		text:       rgb{17, 24, 39},
		muted:      rgb{107, 114, 128},
		rule:       rgb{229, 231, 235},
		negative:   rgb{22, 163, 74},
	}
	darkPalette = palette{
		background: rgb{0, 0, 0},
		text:       rgb{245, 245, 245},
		muted:      rgb{156, 163, 175},
		rule:       rgb{55, 65, 81},
		negative:   rgb{74, 222, 128},
	}
)

type opKind int

const (
	opText opKind = iota
	opLine
)

// drawOp - one resolved drawing instruction. x/y is the text baseline
// for opText and the segment start for opLine.
type drawOp struct {
	kind  opKind
	x, y  float64
	x2    float64 // opLine end
	text  string
	size  float64
	bold  bool
	color rgb
}

// pageLayout - fully measured pages ready for any backend to draw.
type pageLayout struct {
	width, height float64
	pages         [][]drawOp
	colors        palette
}

// measureFunc reports the rendered width of text in px at the given
// font size and weight.
type measureFunc func(text string, size float64, bold bool) float64

// layoutDocument flows the document's blocks into pages. When paginate
// is set, pages break at A4 proportions; otherwise a single page grows
// with the content. Exact-bounds documents are never paginated and use
// a tighter padding.
func layoutDocument(doc *render.Document, measure measureFunc, paginate bool) *pageLayout {
	colors := lightPalette
	if doc.Dark || doc.ExactBounds {
		colors = darkPalette
	}
	margin := pageMargin
	if doc.ExactBounds {
		margin = exactPadding
		paginate = false
	}
	pageHeight := 0.0 // grows with content
	if paginate {
		pageHeight = doc.PageWidthPx * 1.4142 // A4 aspect
	}

	l := &layouter{
		measure: measure,
		colors:  colors,
		width:   doc.PageWidthPx,
		height:  pageHeight,
		margin:  margin,
		y:       margin,
		exact:   !paginate,
	}

	for _, b := range doc.Blocks {
		l.block(b)
	}
	height := pageHeight
	if !paginate {
		height = l.y + margin
	}
	l.flush()

	return &pageLayout{
		width:  doc.PageWidthPx,
		height: height,
		pages:  l.pages,
		colors: colors,
	}
}

type layouter struct {
	measure measureFunc
	colors  palette
	width   float64
	height  float64
	margin  float64
	exact   bool

	pages   [][]drawOp
	current []drawOp
	y       float64
}

func (l *layouter) contentWidth() float64 { return l.width - 2*l.margin }

func (l *layouter) right() float64 { return l.width - l.margin }

// ensure leaves room for h px, breaking the page when needed. Content
// never straddles a break; short blocks move whole to the next page.
func (l *layouter) ensure(h float64) {
	if l.exact || l.height == 0 {
		return
	}
	if l.y+h > l.height-l.margin && len(l.current) > 0 {
		l.flush()
	}
}

func (l *layouter) flush() {
	if len(l.current) == 0 && len(l.pages) > 0 {
		return
	}
	l.pages = append(l.pages, l.current)
	l.current = nil
	l.y = l.margin
}

func (l *layouter) text(x float64, size float64, bold bool, color rgb, s string) {
	l.current = append(l.current, drawOp{
		kind: opText, x: x, y: l.y + size, text: s,
		size: size, bold: bold, color: color,
	})
}

func (l *layouter) textRight(size float64, bold bool, color rgb, s string) {
	w := l.measure(s, size, bold)
	l.text(l.right()-w, size, bold, color, s)
}

func (l *layouter) textCenter(size float64, bold bool, color rgb, s string) {
	w := l.measure(s, size, bold)
	l.text((l.width-w)/2, size, bold, color, s)
}

func (l *layouter) advance(h float64) { l.y += h }

func (l *layouter) block(b render.Block) {
	switch b.Kind {
	case render.BlockTitle:
		l.ensure(titleSize*lineGap + sectionGap)
		l.textCenter(titleSize, true, l.colors.text, b.Text)
		l.advance(titleSize*lineGap + sectionGap)

	case render.BlockSectionTitle:
		l.ensure(sectionSize*lineGap + sectionGap)
		l.advance(sectionGap / 2)
		l.text(l.margin, sectionSize, true, l.colors.text, b.Text)
		l.advance(sectionSize*lineGap + blockGap/2)

	case render.BlockParagraph:
		l.paragraph(b.Spans)

	case render.BlockRow:
		l.ensure(rowSize*lineGap + blockGap/2)
		valueColor := l.colors.text
		if b.Negative {
			valueColor = l.colors.negative
		}
		if b.Muted {
			valueColor = l.colors.muted
		}
		l.text(l.margin, rowSize, false, l.colors.muted, b.Label)
		l.textRight(rowSize, false, valueColor, b.Value)
		l.advance(rowSize*lineGap + blockGap/2)

	case render.BlockItem:
		l.ensure(bodySize*lineGap + noteSize*lineGap + blockGap)
		l.text(l.margin, bodySize, true, l.colors.text, b.Text)
		l.textRight(bodySize, true, l.colors.text, b.Amount)
		l.advance(bodySize * lineGap)
		if b.Detail != "" {
			l.text(l.margin, noteSize, false, l.colors.muted, b.Detail)
			l.advance(noteSize * lineGap)
		}
		l.advance(blockGap)

	case render.BlockTotal:
		l.ensure(sectionSize*lineGap + blockGap)
		l.text(l.margin, sectionSize, true, l.colors.text, b.Label)
		l.textRight(sectionSize, true, l.colors.text, b.Amount)
		l.advance(sectionSize*lineGap + blockGap)

	case render.BlockDivider:
		l.ensure(blockGap * 2)
		l.advance(blockGap)
		l.current = append(l.current, drawOp{
			kind: opLine, x: l.margin, y: l.y, x2: l.right(), color: l.colors.rule,
		})
		l.advance(blockGap)

	case render.BlockNote:
		l.wrapped(b.Text, noteSize, false, l.colors.muted)
		l.advance(blockGap / 2)

	case render.BlockSpacer:
		l.advance(blockGap * 2)
	}
}

// paragraph flows mixed-weight spans with word wrapping.
func (l *layouter) paragraph(spans []render.Span) {
	type word struct {
		text string
		bold bool
	}
	var words []word
	for _, sp := range spans {
		for _, w := range strings.Fields(sp.Text) {
			words = append(words, word{text: w, bold: sp.Bold})
		}
	}

	space := l.measure(" ", bodySize, false)
	x := l.margin
	started := false
	l.ensure(bodySize * lineGap * 2)
	for _, w := range words {
		wWidth := l.measure(w.text, bodySize, w.bold)
		if started && x+space+wWidth > l.right() {
			l.advance(bodySize * lineGap)
			l.ensure(bodySize * lineGap)
			x = l.margin
			started = false
		}
		if started {
			x += space
		}
		l.text(x, bodySize, w.bold, l.colors.text, w.text)
		x += wWidth
		started = true
	}
	if started {
		l.advance(bodySize * lineGap)
	}
	l.advance(blockGap / 2)
}

// wrapped draws uniform-weight text with word wrapping.
func (l *layouter) wrapped(text string, size float64, bold bool, color rgb) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if l.measure(candidate, size, bold) > l.contentWidth() {
			l.ensure(size * lineGap)
			l.text(l.margin, size, bold, color, line)
			l.advance(size * lineGap)
			line = w
			continue
		}
		line = candidate
	}
	l.ensure(size * lineGap)
	l.text(l.margin, size, bold, color, line)
	l.advance(size * lineGap)
}
