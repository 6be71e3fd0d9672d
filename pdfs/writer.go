package pdfs

import "io"

// Writer - minimal, stream-style, append-only PDF writer. No page navigation.
type Writer interface {
	PaperSize() PaperSize

	AddBlankPage()

	SetFont(style string, size float64)
	TextWidth(text string) float64
	SetTextColor(r int, g int, b int)
	SetFillColor(r int, g int, b int)
	SetDrawColor(r int, g int, b int)

	Text(x float64, y float64, text string)
	Line(x1 float64, y1 float64, x2 float64, y2 float64)
	FillRect(x float64, y float64, w float64, h float64)

	Err() error

	WriteTo(w io.Writer) (int64, error)
	ProduceBytes() ([]byte, error)
}
