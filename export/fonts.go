package export

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	size float64
	bold bool
}

// fontSet loads the configured TTF pair once and hands out sized faces.
// Faces are cached; gg and the layout measurer both draw from here so
// geometry always matches.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

func loadFontSet(regularFile string, boldFile string) (*fontSet, error) {
	regular, err := parseFontFile(regularFile)
	if err != nil {
		return nil, err
	}
	bold := regular
	if boldFile != "" && boldFile != regularFile {
		if bold, err = parseFontFile(boldFile); err != nil {
			return nil, err
		}
	}
	return &fontSet{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: read font %s: %w", path, err)
	}
	f, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("export: parse font %s: %w", path, err)
	}
	return f, nil
}

// face returns a face whose pixel height equals size (DPI fixed at 72
// so point size and pixel size coincide).
func (fs *fontSet) face(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}

	src := fs.regular
	if bold {
		src = fs.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("export: face size %g: %w", size, err)
	}
	fs.faces[key] = f
	return f, nil
}

// measure implements measureFunc. A face that fails to build measures
// as zero width; the subsequent draw surfaces the error.
func (fs *fontSet) measure(text string, size float64, bold bool) float64 {
	f, err := fs.face(size, bold)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(f, text)) / 64
}
