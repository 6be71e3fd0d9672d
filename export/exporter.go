package export

import (
	"fmt"
	"image/jpeg"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/zeptools/billgen/pdfs"
	"github.com/zeptools/billgen/render"
)

// rasterScale doubles the raster resolution relative to layout pixels.
const rasterScale = 2.0

const jpegQuality = 95

// Exporter draws rendered documents into the three download formats.
// Safe for concurrent use.
type Exporter struct {
	fontFile     string
	boldFontFile string
	fonts        *fontSet
}

// NewExporter parses the font pair up front so export requests fail
// fast on a bad font configuration.
func NewExporter(fontFile string, boldFontFile string) (*Exporter, error) {
	fonts, err := loadFontSet(fontFile, boldFontFile)
	if err != nil {
		return nil, err
	}
	if boldFontFile == "" {
		boldFontFile = fontFile
	}
	return &Exporter{
		fontFile:     fontFile,
		boldFontFile: boldFontFile,
		fonts:        fonts,
	}, nil
}

// Export writes the document to w in the requested format. Any failure
// returns an error with nothing written beyond what the underlying
// writer already consumed; callers buffer when they need all-or-nothing
// output.
func (e *Exporter) Export(doc *render.Document, f Format, w io.Writer) error {
	switch f {
	case FormatPDF:
		return e.exportPDF(doc, w)
	case FormatPNG, FormatJPG:
		return e.exportImage(doc, f, w)
	default:
		return fmt.Errorf("export: unsupported format %d", int(f))
	}
}

// exportPDF paginates normal documents onto A4-proportioned pages.
// Exact-bounds documents get a single custom page sized to the content,
// mirroring a fit-to-content capture.
func (e *Exporter) exportPDF(doc *render.Document, w io.Writer) error {
	lay := layoutDocument(doc, e.fonts.measure, true)

	paper := pdfs.A4Size
	if doc.ExactBounds {
		paper = pdfs.CustomSizeMM(doc.TemplateID, lay.width*pxToMM, lay.height*pxToMM)
	}

	pw := pdfs.NewFpdfWriter(paper, e.fontFile, e.boldFontFile)
	pageW, pageH := paper.MM()
	for _, page := range lay.pages {
		pw.AddBlankPage()
		if lay.colors.background != lightPalette.background {
			bg := lay.colors.background
			pw.SetFillColor(bg.r, bg.g, bg.b)
			pw.FillRect(0, 0, pageW, pageH)
		}
		for _, op := range page {
			switch op.kind {
			case opText:
				style := ""
				if op.bold {
					style = "B"
				}
				pw.SetFont(style, op.size*0.75) // px to pt
				pw.SetTextColor(op.color.r, op.color.g, op.color.b)
				pw.Text(op.x*pxToMM, op.y*pxToMM, op.text)
			case opLine:
				pw.SetDrawColor(op.color.r, op.color.g, op.color.b)
				pw.Line(op.x*pxToMM, op.y*pxToMM, op.x2*pxToMM, op.y*pxToMM)
			}
		}
	}
	if err := pw.Err(); err != nil {
		return fmt.Errorf("export: compose pdf: %w", err)
	}
	if _, err := pw.WriteTo(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// exportImage draws the whole document onto one canvas at double
// resolution, the way a screen capture of the preview would look.
func (e *Exporter) exportImage(doc *render.Document, f Format, w io.Writer) error {
	lay := layoutDocument(doc, e.fonts.measure, false)

	ctx := gg.NewContext(
		int(math.Ceil(lay.width*rasterScale)),
		int(math.Ceil(lay.height*rasterScale)),
	)
	bg := lay.colors.background
	ctx.SetRGB255(bg.r, bg.g, bg.b)
	ctx.Clear()

	for _, page := range lay.pages {
		for _, op := range page {
			switch op.kind {
			case opText:
				face, err := e.fonts.face(op.size*rasterScale, op.bold)
				if err != nil {
					return err
				}
				ctx.SetFontFace(face)
				ctx.SetRGB255(op.color.r, op.color.g, op.color.b)
				ctx.DrawString(op.text, op.x*rasterScale, op.y*rasterScale)
			case opLine:
				ctx.SetRGB255(op.color.r, op.color.g, op.color.b)
				ctx.SetLineWidth(rasterScale)
				ctx.DrawLine(op.x*rasterScale, op.y*rasterScale, op.x2*rasterScale, op.y*rasterScale)
				ctx.Stroke()
			}
		}
	}

	switch f {
	case FormatPNG:
		if err := ctx.EncodePNG(w); err != nil {
			return fmt.Errorf("export: encode png: %w", err)
		}
	case FormatJPG:
		if err := jpeg.Encode(w, ctx.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("export: encode jpg: %w", err)
		}
	}
	return nil
}
