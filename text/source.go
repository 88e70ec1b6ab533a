package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a parsed font file. One Source creates faces at any
// number of sizes and is shared across the application; parsing happens
// once, at construction.
//
// Source is safe for concurrent use. The faces it hands out are not:
// a face carries internal shaping buffers, so each render call requests
// its own.
type Source struct {
	data []byte
	font *sfnt.Font
	name string
}

// NewSource parses a TTF or OTF font from data. The slice is retained;
// callers must not modify it afterwards.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &Source{data: data, font: f}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewSourceFromFile loads and parses a font file.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font %s: %w", path, err)
	}
	return NewSource(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *Source) Name() string { return s.name }

// Face creates a font face at the given pixel size. Faces are cheap to
// create but not safe for concurrent use; request one per render call.
func (s *Source) Face(size float64) (font.Face, error) {
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
