// Package assets provides the shared read-only resource tables backing
// the frame styles: parsed fonts and decoded brand logos.
//
// Tables are explicit values constructed once at startup and passed into
// whatever needs them, never ambient globals, so rendering stays testable
// without process-wide state. Lookups take a short critical section to
// read-or-insert, then hand out a shared handle that is used outside the
// lock; the cached artifacts themselves are immutable.
package assets

import "errors"

// Sentinel errors for the assets package.
var (
	// ErrLogoNotFound is returned when no logo asset exists for a brand
	// and kind combination. Styles absorb it by omitting the logo.
	ErrLogoNotFound = errors.New("assets: logo not found")

	// ErrFontNotFound is returned when a font file is missing from the
	// asset directory.
	ErrFontNotFound = errors.New("assets: font not found")
)

// Library bundles the resource tables for one asset directory.
type Library struct {
	Fonts *FontTable
	Logos *LogoTable
}

// NewLibrary creates a library rooted at dir, which is expected to hold
// fonts/ and logos/ subdirectories. Nothing is loaded until first use.
func NewLibrary(dir string) *Library {
	return &Library{
		Fonts: NewFontTable(dir),
		Logos: NewLogoTable(dir),
	}
}
