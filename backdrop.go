package framer

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Backdrop working-copy bounds: the source is shrunk to at most
// backdropMaxScale of its size, but the short edge never drops below
// backdropShortEdge pixels.
const (
	backdropShortEdge = 300
	backdropMaxScale  = 0.2
)

// Backdrop produces an aspect-filled, blurred, brightness-shifted
// background of exactly targetW by targetH pixels from src.
//
// The expensive work happens on a small working copy: the source is
// downsampled with a nearest filter, the aspect-fill crop is computed on
// the small copy (so crop coordinates stay consistent with the reduced
// buffer), the equivalent blur radius is applied there, brightness is
// shifted, and only then is the result upsampled with a linear filter to
// the requested dimensions. Full-resolution blurring, the dominant cost
// for large originals, never happens.
//
// brightnessDelta is added to each color channel and clamped; negative
// values darken the backdrop so overlaid text stays readable. The crop is
// always a crop, never a letterbox, and never distorts.
func Backdrop(src image.Image, targetW, targetH int, blurRadius float64, brightnessDelta int) *image.NRGBA {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	shortEdge := srcW
	if srcH < shortEdge {
		shortEdge = srcH
	}
	scale := float64(backdropShortEdge) / float64(shortEdge)
	if scale > backdropMaxScale {
		scale = backdropMaxScale
	}

	tinyW := int(float64(srcW) * scale)
	tinyH := int(float64(srcH) * scale)
	if tinyW < 1 {
		tinyW = 1
	}
	if tinyH < 1 {
		tinyH = 1
	}
	tiny := imaging.Resize(src, tinyW, tinyH, imaging.NearestNeighbor)

	// Aspect-fill crop on the small copy.
	cropW, cropH := aspectFillCrop(tinyW, tinyH, targetW, targetH)
	tiny = imaging.CropCenter(tiny, cropW, cropH)

	if eff := blurRadius * scale; eff > 0 {
		tiny = imaging.Blur(tiny, eff)
	}
	if brightnessDelta != 0 {
		shiftBrightness(tiny, brightnessDelta)
	}

	return imaging.Resize(tiny, targetW, targetH, imaging.Linear)
}

// aspectFillCrop returns the largest sub-rectangle of a w-by-h image whose
// aspect ratio matches targetW/targetH.
func aspectFillCrop(w, h, targetW, targetH int) (cropW, cropH int) {
	ratioTarget := float64(targetW) / float64(targetH)
	ratioSrc := float64(w) / float64(h)

	if ratioTarget > ratioSrc {
		// Target is wider: trim top and bottom.
		cropW = w
		cropH = int(math.Round(float64(w) / ratioTarget))
	} else {
		// Target is taller: trim left and right.
		cropW = int(math.Round(float64(h) * ratioTarget))
		cropH = h
	}
	if cropW < 1 {
		cropW = 1
	}
	if cropH < 1 {
		cropH = 1
	}
	return cropW, cropH
}

// shiftBrightness adds delta to every color channel in place, clamping to
// [0, 255]. The additive shift matches the backdrop's tuned darkening
// constants; a percentage-based adjustment would not.
func shiftBrightness(img *image.NRGBA, delta int) {
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := int(img.Pix[i+c]) + delta
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			img.Pix[i+c] = uint8(v)
		}
	}
}
