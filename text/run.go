package text

import "image/color"

// Weight selects the synthetic stroke weight of a run. Heavier weights are
// synthesized by multi-offset stamping, so a single font file covers the
// whole range.
type Weight uint8

const (
	// Normal draws the font as-is, the fastest path.
	Normal Weight = iota

	// Medium slightly thickens strokes.
	Medium

	// Bold noticeably thickens strokes.
	Bold

	// ExtraBold is the heaviest synthetic weight.
	ExtraBold
)

// String returns the weight name.
func (w Weight) String() string {
	switch w {
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	default:
		return "Unknown"
	}
}

// stampMagnitude is the radius, in supersampled pixels, of the offset ring
// the glyph run is stamped around to fake the weight.
func (w Weight) stampMagnitude() int {
	switch w {
	case Medium:
		return 1
	case Bold:
		return 2
	case ExtraBold:
		return 3
	default:
		return 0
	}
}

// ItalicSkew is the horizontal shear factor used for simulated italics.
// Empirically tuned against the reference frames; treated as opaque.
const ItalicSkew = 0.23

// Run describes one text draw call: the string, its pixel size, fill
// color, synthetic weight and optional shear. Runs are ephemeral values
// constructed per call and never stored.
type Run struct {
	Text   string
	Size   float64
	Color  color.NRGBA
	Weight Weight

	// Skew is the horizontal shear factor for simulated italics;
	// 0 means upright, ItalicSkew is the house style.
	Skew float64
}
