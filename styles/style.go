// Package styles contains the per-frame-style layout engines. Each style
// is plain arithmetic placement over the engine primitives in the framer
// package: it computes geometry, then calls the canvas compositor, shadow
// caster, backdrop generator, glass panel and text renderer against one
// mutable canvas.
package styles

import (
	"fmt"
	"image"

	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
)

// Style selects a frame layout. The set is closed and known at compile
// time, so dispatch is a single switch rather than an interface hierarchy.
type Style uint8

const (
	// WhiteClassic is the minimal white bottom bar with logo, skewed
	// model name and a parameter line.
	WhiteClassic Style = iota

	// TransparentClassic floats the photo in a glass panel over a
	// blurred, darkened backdrop of itself.
	TransparentClassic

	// WhitePolaroid is the even white border with a tall bottom band and
	// center-stacked logo and parameters.
	WhitePolaroid

	// WhiteMaster is the wide white border with a serif title card and
	// parameter columns.
	WhiteMaster

	// TransparentMaster is the master title card drawn in white ink over
	// a blurred backdrop instead of a white mat.
	TransparentMaster

	// WhiteModern is the white mat with a script brand signature and
	// outlined parameter badges.
	WhiteModern
)

// ParseStyle maps a style name (as used by the CLI and config file) to a
// Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "classic", "white-classic":
		return WhiteClassic, nil
	case "blur", "transparent-classic":
		return TransparentClassic, nil
	case "polaroid", "white-polaroid":
		return WhitePolaroid, nil
	case "master", "white-master":
		return WhiteMaster, nil
	case "blur-master", "transparent-master":
		return TransparentMaster, nil
	case "modern", "white-modern":
		return WhiteModern, nil
	default:
		return 0, fmt.Errorf("styles: unknown style %q", name)
	}
}

// String returns the canonical style name.
func (s Style) String() string {
	switch s {
	case WhiteClassic:
		return "classic"
	case TransparentClassic:
		return "blur"
	case WhitePolaroid:
		return "polaroid"
	case WhiteMaster:
		return "master"
	case TransparentMaster:
		return "blur-master"
	case WhiteModern:
		return "modern"
	default:
		return "unknown"
	}
}

// Suffix returns the filename suffix appended to exported files.
func (s Style) Suffix() string { return s.String() }

// Render composes the frame for one photo: src is the decoded,
// orientation-corrected photo, sc the resolved shooting context and lib
// the shared asset tables. It returns the composed image ready for
// encoding, or a typed error that aborts this photo only.
//
// Render holds no shared mutable state and is safe to call concurrently
// with distinct photos.
func Render(src image.Image, sc meta.ShootingContext, lib *assets.Library, style Style) (image.Image, error) {
	switch style {
	case WhiteClassic:
		return renderWhiteClassic(src, sc, lib)
	case TransparentClassic:
		return renderTransparentClassic(src, sc, lib)
	case WhitePolaroid:
		return renderWhitePolaroid(src, sc, lib)
	case WhiteMaster:
		return renderWhiteMaster(src, sc, lib)
	case TransparentMaster:
		return renderTransparentMaster(src, sc, lib)
	case WhiteModern:
		return renderWhiteModern(src, sc, lib)
	default:
		return nil, fmt.Errorf("styles: unknown style %d", style)
	}
}
