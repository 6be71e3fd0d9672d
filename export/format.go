// Package export turns rendered documents into downloadable PDF, PNG
// or JPG bytes. A failed export produces an error and no partial
// output, never a corrupt file.
package export

import (
	"fmt"
	"strings"
	"time"
)

type Format int

const (
	FormatPDF Format = iota
	FormatPNG
	FormatJPG
)

// ParseFormat maps the wire value to a Format. Matching ignores case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	default:
		return 0, fmt.Errorf("export: unsupported format %q", s)
	}
}

func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPG:
		return "jpg"
	default:
		return "pdf"
	}
}

func (f Format) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPG:
		return "image/jpeg"
	default:
		return "application/pdf"
	}
}

func (f Format) String() string { return f.Ext() }

// Filename builds the download name: <template id>-<YYYY-MM-DD>.<ext>.
func Filename(templateID string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", templateID, now.Format("2006-01-02"), f.Ext())
}
