package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyRun is returned when a run with no text is rendered.
	ErrEmptyRun = errors.New("text: empty text run")
)
