package pdfs

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/zeptools/billgen/rw"
)

const fontFamily = "doc"

// FpdfWriter implements Writer on top of go-pdf/fpdf. Coordinates are
// in millimeters. A UTF-8 TTF font is required for the rupee sign and
// other non-latin1 glyphs.
type FpdfWriter struct {
	doc   *fpdf.Fpdf
	paper PaperSize
}

var _ Writer = (*FpdfWriter)(nil)

// NewFpdfWriter creates a writer for the given paper size with no page
// margins and automatic page breaking off. Callers paginate themselves.
// boldFontFile may equal fontFile when no bold cut is available.
func NewFpdfWriter(paper PaperSize, fontFile string, boldFontFile string) *FpdfWriter {
	w, h := paper.MM()
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddUTF8Font(fontFamily, "", fontFile)
	doc.AddUTF8Font(fontFamily, "B", boldFontFile)
	doc.SetFont(fontFamily, "", 12)
	return &FpdfWriter{doc: doc, paper: paper}
}

func (fw *FpdfWriter) PaperSize() PaperSize { return fw.paper }

func (fw *FpdfWriter) AddBlankPage() { fw.doc.AddPage() }

// SetFont switches style within the registered family. style is "" or "B".
func (fw *FpdfWriter) SetFont(style string, size float64) {
	fw.doc.SetFont(fontFamily, style, size)
}

func (fw *FpdfWriter) TextWidth(text string) float64 {
	return fw.doc.GetStringWidth(text)
}

func (fw *FpdfWriter) SetTextColor(r int, g int, b int) { fw.doc.SetTextColor(r, g, b) }
func (fw *FpdfWriter) SetFillColor(r int, g int, b int) { fw.doc.SetFillColor(r, g, b) }
func (fw *FpdfWriter) SetDrawColor(r int, g int, b int) { fw.doc.SetDrawColor(r, g, b) }

// Text draws at (x, y) with y being the text baseline.
func (fw *FpdfWriter) Text(x float64, y float64, text string) {
	fw.doc.Text(x, y, text)
}

func (fw *FpdfWriter) Line(x1 float64, y1 float64, x2 float64, y2 float64) {
	fw.doc.Line(x1, y1, x2, y2)
}

func (fw *FpdfWriter) FillRect(x float64, y float64, w float64, h float64) {
	fw.doc.Rect(x, y, w, h, "F")
}

func (fw *FpdfWriter) Err() error { return fw.doc.Error() }

// WriteTo implements io.WriterTo
func (fw *FpdfWriter) WriteTo(w io.Writer) (int64, error) {
	cw := rw.NewCountWriter(w)
	err := fw.doc.Output(cw)
	return cw.BytesWritten(), err
}

func (fw *FpdfWriter) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := fw.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
