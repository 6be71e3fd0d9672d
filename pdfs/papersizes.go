package pdfs

type PaperSize struct {
	Name   string
	Width  float64 // in `pt` (1" = 72pts)
	Height float64 // in `pt`
}

var (
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}          // 8.5" x 11"
	A4Size     = PaperSize{Name: "A4", Width: 595.27559, Height: 841.88976} // 210mm x 297mm
)

// MM reports the size in millimeters, the unit the underlying document
// writers are configured with.
func (p PaperSize) MM() (w float64, h float64) {
	const mmPerPt = 25.4 / 72
	return p.Width * mmPerPt, p.Height * mmPerPt
}

// CustomSizeMM builds a paper size from millimeter dimensions, used for
// content-fitted pages.
func CustomSizeMM(name string, wMM float64, hMM float64) PaperSize {
	const ptPerMM = 72 / 25.4
	return PaperSize{Name: name, Width: wMM * ptPerMM, Height: hMM * ptPerMM}
}
