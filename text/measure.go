package text

import (
	"golang.org/x/image/font"
)

// Metrics are the vertical metrics of a source at a given size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line box.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// line box, as a positive value.
	Descent float64

	// Height is Ascent + Descent, the height of the line box.
	Height float64
}

// Measure returns the advance width of s at the given pixel size: the sum
// of the per-glyph horizontal advances. Layout code measures once and
// reuses the value for centering; Draw never re-measures, so placement and
// rendering cannot disagree.
func Measure(src *Source, s string, size float64) (float64, error) {
	face, err := src.Face(size)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	return fixedToFloat(font.MeasureString(face, s)), nil
}

// LineMetrics returns the vertical metrics of the source at the given
// pixel size.
func LineMetrics(src *Source, size float64) (Metrics, error) {
	face, err := src.Face(size)
	if err != nil {
		return Metrics{}, err
	}
	defer face.Close()
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{Ascent: ascent, Descent: descent, Height: ascent + descent}, nil
}
