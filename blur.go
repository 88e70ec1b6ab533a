package framer

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resolution-adaptive blur: a Gaussian blur with radius r at scale s looks
// the same as a blur with radius r*s applied to an s-scaled copy, so large
// blurs are computed on a small nearest-neighbor downsample and upsampled
// afterwards. On a 60 MP original this turns the dominant cost of the
// frosted styles into a few milliseconds.

// blurShortEdgeFloor keeps the downsampled short edge large enough that
// block artifacts stay invisible after the linear upsample.
const blurShortEdgeFloor = 150

// blurScale returns the working-scale factor for a requested full-
// resolution blur radius. The factor steps down as the radius grows and is
// floored so the short edge of the working copy stays at or above
// blurShortEdgeFloor pixels.
func blurScale(radius float64, shortEdge int) float64 {
	var s float64
	switch {
	case radius < 2:
		s = 1.0
	case radius < 10:
		s = 0.5
	case radius < 30:
		s = 0.25
	default:
		s = 0.125
	}
	if shortEdge > 0 && s*float64(shortEdge) < blurShortEdgeFloor {
		s = float64(blurShortEdgeFloor) / float64(shortEdge)
		if s > 1 {
			s = 1
		}
	}
	return s
}

// BlurAtScale blurs img with the visual softness of a full-resolution
// Gaussian of the given radius, working at a reduced resolution chosen
// from the radius. It returns the blurred reduced-resolution image, the
// radius that was actually applied to it, and the scale factor used.
//
// Upsampling is left to the caller (with a linear filter), since different
// callers upsample to different target shapes. The visual blur radius is
// scale-invariant: doubling the input resolution does not change the
// apparent softness.
func BlurAtScale(img image.Image, radius float64) (blurred *image.NRGBA, effective, scale float64) {
	b := img.Bounds()
	shortEdge := b.Dx()
	if b.Dy() < shortEdge {
		shortEdge = b.Dy()
	}

	scale = blurScale(radius, shortEdge)
	effective = radius * scale

	work := img
	if scale < 1 {
		w := int(float64(b.Dx()) * scale)
		h := int(float64(b.Dy()) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		// Quality does not matter pre-blur, so the cheapest filter wins.
		work = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	if effective <= 0 {
		return imaging.Clone(work), 0, scale
	}
	return imaging.Blur(work, effective), effective, scale
}
