package framer

import (
	"image"

	"github.com/chewxy/math32"
)

// Corner masking produces the rounded-rectangle illusion by touching only
// the four radius-by-radius corner squares of a rectangle. The interior
// cross needs no per-pixel test at all, which bounds the cost to O(4r^2)
// instead of O(w*h).
//
// Inside each square a pixel is classified by its squared distance to the
// arc center: beyond radius it is excluded, within a one-pixel band it is
// scaled by the analytic coverage clamp(radius - dist, 0, 1), and inside
// the arc it is left alone.

// clampRadius degrades gracefully on degenerate geometry: a radius larger
// than half the shorter side clamps instead of failing, since "full
// rounding" is an acceptable visual result.
func clampRadius(rect image.Rectangle, radius int) int {
	if radius < 0 {
		return 0
	}
	if half := rect.Dx() / 2; radius > half {
		radius = half
	}
	if half := rect.Dy() / 2; radius > half {
		radius = half
	}
	return radius
}

// cornerCoverage returns the arc coverage of the pixel at local corner
// coordinates (i, j), both in [0, radius), where (0, 0) is the outermost
// pixel of the square. 0 means outside the arc, 1 fully inside, and
// values between lie on the one-pixel anti-alias band.
func cornerCoverage(i, j, radius int) float32 {
	r := float32(radius)
	dx := r - float32(i) - 0.5
	dy := r - float32(j) - 0.5
	distSq := dx*dx + dy*dy
	if distSq <= (r-1)*(r-1) {
		return 1
	}
	if distSq > r*r {
		return 0
	}
	cov := r - math32.Sqrt(distSq)
	if cov < 0 {
		return 0
	}
	if cov > 1 {
		return 1
	}
	return cov
}

// cornerOrigins returns the canvas coordinates of the outermost pixel of
// each corner square together with the per-axis direction toward the
// rectangle interior.
func cornerOrigins(rect image.Rectangle) [4][4]int {
	return [4][4]int{
		{rect.Min.X, rect.Min.Y, 1, 1},           // top-left
		{rect.Max.X - 1, rect.Min.Y, -1, 1},      // top-right
		{rect.Min.X, rect.Max.Y - 1, 1, -1},      // bottom-left
		{rect.Max.X - 1, rect.Max.Y - 1, -1, -1}, // bottom-right
	}
}

// RoundCorners rewrites the alpha channel in the four corner squares of
// rect so the content appears to have rounded corners of the given radius.
// Pixels farther than radius from every corner are untouched. Intended for
// content sitting on a transparent canvas that is composited afterwards.
func RoundCorners(buf *PixelBuffer, rect image.Rectangle, radius int) {
	radius = clampRadius(rect, radius)
	if radius == 0 {
		return
	}
	for _, corner := range cornerOrigins(rect) {
		ox, oy, sx, sy := corner[0], corner[1], corner[2], corner[3]
		for j := 0; j < radius; j++ {
			for i := 0; i < radius; i++ {
				cov := cornerCoverage(i, j, radius)
				if cov >= 1 {
					continue
				}
				buf.scaleAlpha(ox+sx*i, oy+sy*j, cov)
			}
		}
	}
}

// FillCorners paints the region outside the corner arcs with fill,
// blending the anti-alias band over the existing pixels. This is the
// inverse of RoundCorners: instead of cutting the content's alpha it
// paints the surrounding background on top, which is the cheap way to
// round an image already pasted onto an opaque canvas of color fill.
func FillCorners(buf *PixelBuffer, rect image.Rectangle, radius int, fill RGBA8) {
	radius = clampRadius(rect, radius)
	if radius == 0 {
		return
	}
	for _, corner := range cornerOrigins(rect) {
		ox, oy, sx, sy := corner[0], corner[1], corner[2], corner[3]
		for j := 0; j < radius; j++ {
			for i := 0; i < radius; i++ {
				cov := cornerCoverage(i, j, radius)
				if cov >= 1 {
					continue
				}
				x, y := ox+sx*i, oy+sy*j
				if cov <= 0 {
					buf.SetPixel(x, y, fill)
					continue
				}
				c := fill
				c.A = uint8(float32(fill.A) * (1 - cov))
				buf.BlendPixel(x, y, c)
			}
		}
	}
}

// FillRoundedRect fills rect with a rounded-rectangle of the given color.
// The interior cross is filled with straight row runs; only the corner
// squares take the per-pixel coverage path. Translucent fills blend
// source-over with whatever is already on the buffer.
func FillRoundedRect(buf *PixelBuffer, rect image.Rectangle, radius int, fill RGBA8) {
	rect = rect.Intersect(image.Rect(0, 0, buf.width, buf.height))
	if rect.Empty() {
		return
	}
	radius = clampRadius(rect, radius)

	opaque := fill.A == 255

	// Interior cross: full-width rows in the vertical middle band, inset
	// rows beside the corner squares.
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		x0, x1 := rect.Min.X, rect.Max.X
		if y < rect.Min.Y+radius || y >= rect.Max.Y-radius {
			x0 += radius
			x1 -= radius
		}
		if x0 >= x1 {
			continue
		}
		if opaque {
			i := (y*buf.width + x0) * 4
			fillRGBA(buf.data[i:i+(x1-x0)*4], fill)
		} else {
			for x := x0; x < x1; x++ {
				buf.BlendPixel(x, y, fill)
			}
		}
	}

	if radius == 0 {
		return
	}
	for _, corner := range cornerOrigins(rect) {
		ox, oy, sx, sy := corner[0], corner[1], corner[2], corner[3]
		for j := 0; j < radius; j++ {
			for i := 0; i < radius; i++ {
				cov := cornerCoverage(i, j, radius)
				if cov <= 0 {
					continue
				}
				c := fill
				if cov < 1 {
					c.A = uint8(float32(fill.A) * cov)
				}
				buf.BlendPixel(ox+sx*i, oy+sy*j, c)
			}
		}
	}
}
