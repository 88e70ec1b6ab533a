package meta

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// ErrNoExif is returned when a file carries no usable EXIF block. The
// batch layer skips such files instead of failing the whole run.
var ErrNoExif = errors.New("meta: no exif data")

// FromFile reads the EXIF block of an image file and resolves it into a
// ShootingContext. Files without EXIF surface ErrNoExif; individual
// missing tags are simply left at their zero values.
func FromFile(path string) (ShootingContext, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShootingContext{}, fmt.Errorf("meta: open %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return ShootingContext{}, fmt.Errorf("meta: %s: %w", path, ErrNoExif)
	}

	rawMake := stringTag(x, exif.Make)
	rawModel := stringTag(x, exif.Model)
	if rawMake == "" && rawModel == "" {
		return ShootingContext{}, fmt.Errorf("meta: %s has no camera tags: %w", path, ErrNoExif)
	}

	params := ShootingParams{
		ISO:          intTag(x, exif.ISOSpeedRatings),
		Aperture:     ratTag(x, exif.FNumber),
		FocalLength:  int(ratTag(x, exif.FocalLength)),
		ShutterSpeed: shutterTag(x),
	}

	return Resolve(rawMake, rawModel, params), nil
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return s
}

func intTag(x *exif.Exif, name exif.FieldName) int {
	tag, err := x.Get(name)
	if err != nil {
		return 0
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0
	}
	return v
}

func ratTag(x *exif.Exif, name exif.FieldName) float64 {
	tag, err := x.Get(name)
	if err != nil {
		return 0
	}
	r, err := tag.Rat(0)
	if err != nil {
		return 0
	}
	v, _ := r.Float64()
	return v
}

// shutterTag formats ExposureTime as photographers read it: fractional
// exposures stay fractions ("1/250s"), long exposures become seconds
// ("2s", "1.5s").
func shutterTag(x *exif.Exif) string {
	tag, err := x.Get(exif.ExposureTime)
	if err != nil {
		return ""
	}
	r, err := tag.Rat(0)
	if err != nil {
		return ""
	}
	return FormatShutter(r)
}

// FormatShutter renders an exposure-time rational for display.
func FormatShutter(r *big.Rat) string {
	if r == nil || r.Sign() <= 0 {
		return ""
	}
	v, _ := r.Float64()
	if v >= 1 {
		if v == float64(int64(v)) {
			return fmt.Sprintf("%ds", int64(v))
		}
		return fmt.Sprintf("%.1fs", v)
	}
	// Re-reduce to the conventional 1/N form.
	den := int64(1/v + 0.5)
	return fmt.Sprintf("1/%ds", den)
}
