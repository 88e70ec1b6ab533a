// Package text renders anti-aliased text runs for the frame styles.
//
// Beyond the plain rasterization provided by the font stack, the package
// synthesizes heavier stroke weights without bold font files by stamping
// the glyph run at a ring of small offsets inside a supersampled buffer,
// and simulates italics with a per-row horizontal shear, both downsampled
// with a smoothing filter before composition.
package text
