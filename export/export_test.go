package export

import (
	"strings"
	"testing"
	"time"

	"github.com/zeptools/billgen/formstate"
	"github.com/zeptools/billgen/render"
)

// fixedMeasure approximates a monospace face, enough for layout
// geometry tests without a font file on disk.
func fixedMeasure(text string, size float64, bold bool) float64 {
	return float64(len([]rune(text))) * size * 0.55
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"PDF", FormatPDF, false},
		{"png", FormatPNG, false},
		{"jpg", FormatJPG, false},
		{"jpeg", FormatJPG, false},
		{" pdf ", FormatPDF, false},
		{"gif", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.February, 10, 15, 4, 5, 0, time.UTC)
	tests := []struct {
		id     string
		format Format
		want   string
	}{
		{"driver", FormatPDF, "driver-2026-02-10.pdf"},
		{"playo", FormatPNG, "playo-2026-02-10.png"},
		{"petrol", FormatJPG, "petrol-2026-02-10.jpg"},
	}
	for _, tc := range tests {
		if got := Filename(tc.id, tc.format, now); got != tc.want {
			t.Errorf("Filename(%q, %v) = %q, want %q", tc.id, tc.format, got, tc.want)
		}
	}
}

func TestFormatMIME(t *testing.T) {
	if FormatPDF.MIME() != "application/pdf" ||
		FormatPNG.MIME() != "image/png" ||
		FormatJPG.MIME() != "image/jpeg" {
		t.Fatal("wrong MIME mapping")
	}
}

func TestLayoutPaginates(t *testing.T) {
	doc := &render.Document{TemplateID: "t", PageWidthPx: 595}
	for range 200 {
		doc.Blocks = append(doc.Blocks, render.Block{Kind: render.BlockRow, Label: "label", Value: "value"})
	}
	lay := layoutDocument(doc, fixedMeasure, true)
	if len(lay.pages) < 2 {
		t.Fatalf("200 rows laid out on %d page(s), want a page break", len(lay.pages))
	}
	if lay.height != 595*1.4142 {
		t.Fatalf("paged height = %v, want A4 proportion", lay.height)
	}
	limit := lay.height - pageMargin + 1
	for i, page := range lay.pages {
		for _, op := range page {
			if op.y > limit {
				t.Fatalf("page %d op at y=%v beyond bottom margin %v", i, op.y, limit)
			}
		}
	}
}

func TestLayoutExactBoundsSinglePage(t *testing.T) {
	doc := &render.Document{TemplateID: "t", PageWidthPx: 420, ExactBounds: true, Dark: true}
	for range 200 {
		doc.Blocks = append(doc.Blocks, render.Block{Kind: render.BlockRow, Label: "label", Value: "value"})
	}
	lay := layoutDocument(doc, fixedMeasure, true)
	if len(lay.pages) != 1 {
		t.Fatalf("exact-bounds document got %d pages, want 1", len(lay.pages))
	}
	if lay.height <= 420*1.4142 {
		t.Fatal("content-fitted height should exceed a nominal page for 200 rows")
	}
	if lay.colors.background != darkPalette.background {
		t.Fatal("exact-bounds document should use the dark palette")
	}
}

func TestLayoutRightAlignment(t *testing.T) {
	doc := &render.Document{
		TemplateID:  "t",
		PageWidthPx: 595,
		Blocks:      []render.Block{{Kind: render.BlockRow, Label: "Total", Value: "INR 5284.38"}},
	}
	lay := layoutDocument(doc, fixedMeasure, true)
	var value *drawOp
	for i, op := range lay.pages[0] {
		if op.text == "INR 5284.38" {
			value = &lay.pages[0][i]
		}
	}
	if value == nil {
		t.Fatal("value op not laid out")
	}
	right := value.x + fixedMeasure(value.text, value.size, false)
	if diff := right - (595 - pageMargin); diff > 0.01 || diff < -0.01 {
		t.Fatalf("value right edge = %v, want %v", right, 595-pageMargin)
	}
}

func TestLayoutWrapsParagraph(t *testing.T) {
	long := strings.Repeat("word ", 60)
	doc := &render.Document{
		TemplateID:  "t",
		PageWidthPx: 595,
		Blocks:      []render.Block{{Kind: render.BlockParagraph, Spans: []render.Span{{Text: long}}}},
	}
	lay := layoutDocument(doc, fixedMeasure, true)
	baselines := map[float64]bool{}
	for _, op := range lay.pages[0] {
		baselines[op.y] = true
		if op.x+fixedMeasure(op.text, op.size, op.bold) > 595-pageMargin+0.01 {
			t.Fatalf("word %q overflows right margin", op.text)
		}
	}
	if len(baselines) < 2 {
		t.Fatal("long paragraph did not wrap")
	}
}

func TestLayoutPreviewDocuments(t *testing.T) {
	// Every catalog document must lay out without panicking and keep
	// all ops inside the page width.
	for _, id := range []string{"driver", "playo", "petrol", "airtel"} {
		doc := render.Preview(id, formstate.Values{})
		lay := layoutDocument(doc, fixedMeasure, true)
		if len(lay.pages) == 0 {
			t.Fatalf("%s: no pages", id)
		}
		for _, page := range lay.pages {
			for _, op := range page {
				if op.x < 0 || op.x > lay.width {
					t.Fatalf("%s: op %q at x=%v outside page width %v", id, op.text, op.x, lay.width)
				}
			}
		}
	}
}

func TestNewExporterMissingFont(t *testing.T) {
	if _, err := NewExporter("/nonexistent/font.ttf", ""); err == nil {
		t.Fatal("expected error for missing font file")
	}
}
