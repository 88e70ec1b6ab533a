package meta

import (
	"fmt"
	"strconv"
	"strings"
)

// ShootingParams holds the physical exposure parameters of one photo.
// Zero values mean the corresponding EXIF field was absent.
type ShootingParams struct {
	ISO          int
	Aperture     float64
	ShutterSpeed string // already display-formatted, e.g. "1/250s"
	FocalLength  int    // millimeters
}

// FormatStandard renders the parameters in the standard one-line form,
// e.g. "50mm  f/1.8  1/800s  ISO 100". Missing fields are skipped.
// Double spaces separate the groups; the frames read better that way.
func (p ShootingParams) FormatStandard() string {
	parts := make([]string, 0, 4)
	if p.FocalLength > 0 {
		parts = append(parts, fmt.Sprintf("%dmm", p.FocalLength))
	}
	if p.Aperture > 0 {
		parts = append(parts, "f/"+formatAperture(p.Aperture))
	}
	if p.ShutterSpeed != "" {
		parts = append(parts, p.ShutterSpeed)
	}
	if p.ISO > 0 {
		parts = append(parts, fmt.Sprintf("ISO %d", p.ISO))
	}
	return strings.Join(parts, "  ")
}

// ShutterBare returns the shutter speed without the trailing unit, the
// form the master-style parameter columns use.
func (p ShootingParams) ShutterBare() string {
	return strings.TrimSpace(strings.TrimSuffix(p.ShutterSpeed, "s"))
}

// ApertureBare returns the aperture value without the "f/" prefix, or ""
// when the field was absent.
func (p ShootingParams) ApertureBare() string {
	if p.Aperture <= 0 {
		return ""
	}
	return formatAperture(p.Aperture)
}

// formatAperture drops a trailing ".0" so f/8 does not render as "f/8.0".
func formatAperture(a float64) string {
	s := strconv.FormatFloat(a, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// ShootingContext is the fully-resolved metadata handed to a frame style:
// the recognized brand, the display model name and the exposure
// parameters. Resolution happens once per photo, before any compositing.
type ShootingContext struct {
	Brand  Brand
	Make   string // cleaned display form of the raw make
	Model  string
	Params ShootingParams
}

// Resolve builds a ShootingContext from raw EXIF strings and parameters.
func Resolve(rawMake, rawModel string, params ShootingParams) ShootingContext {
	return ShootingContext{
		Brand:  ParseBrand(rawMake),
		Make:   cleanMake(rawMake),
		Model:  CleanModelName(rawMake, rawModel),
		Params: params,
	}
}
