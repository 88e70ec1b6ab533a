package meta

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Brand identifies a camera maker with dedicated logo assets and styling.
type Brand uint8

const (
	BrandUnknown Brand = iota
	BrandNikon
	BrandSony
	BrandCanon
	BrandFujifilm
	BrandLeica
	BrandHasselblad
)

// String returns the display name of the brand.
func (b Brand) String() string {
	switch b {
	case BrandNikon:
		return "Nikon"
	case BrandSony:
		return "Sony"
	case BrandCanon:
		return "Canon"
	case BrandFujifilm:
		return "Fujifilm"
	case BrandLeica:
		return "Leica"
	case BrandHasselblad:
		return "Hasselblad"
	default:
		return "Unknown"
	}
}

// corporateNoise is stripped from EXIF Make strings before matching.
// Makers pad the tag with legal suffixes ("NIKON CORPORATION",
// "FUJIFILM Holdings") that never belong in a display name.
var corporateNoise = []string{"CORPORATION", "COMPANY", "HOLDINGS", "CO.,LTD.", "LTD.", "INC."}

// ParseBrand maps a raw EXIF Make string to a Brand. Matching is
// substring-based and case-insensitive because makers are inconsistent
// about casing and suffixes.
func ParseBrand(rawMake string) Brand {
	u := strings.ToUpper(rawMake)
	switch {
	case strings.Contains(u, "NIKON"):
		return BrandNikon
	case strings.Contains(u, "SONY"):
		return BrandSony
	case strings.Contains(u, "CANON"):
		return BrandCanon
	case strings.Contains(u, "FUJI"):
		return BrandFujifilm
	case strings.Contains(u, "LEICA"):
		return BrandLeica
	case strings.Contains(u, "HASSELBLAD"):
		return BrandHasselblad
	default:
		return BrandUnknown
	}
}

// cleanMake strips corporate suffixes and normalizes casing, for display
// of makes that did not match a known brand.
func cleanMake(rawMake string) string {
	u := strings.ToUpper(rawMake)
	for _, noise := range corporateNoise {
		u = strings.ReplaceAll(u, noise, "")
	}
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	return cases.Title(language.English, cases.Compact).String(strings.ToLower(u))
}
