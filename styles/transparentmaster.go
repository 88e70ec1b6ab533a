package styles

import (
	"image"
	"image/color"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
)

// Transparent master layout: the master card drawn in white ink over a
// blurred backdrop instead of a white mat. The backdrop is only slightly
// darkened; the translucent separators and labels carry the card's
// hierarchy instead.
const (
	tmasterBlurSigma  = 150.0
	tmasterBrightness = -15
)

var transparentMasterInk = masterInk{
	value:  color.NRGBA{R: 255, G: 255, B: 255, A: 245},
	label:  color.NRGBA{R: 255, G: 255, B: 255, A: 160},
	script: color.NRGBA{R: 240, G: 230, B: 210, A: 250},
	title:  color.NRGBA{R: 255, G: 255, B: 255, A: 200},
	sep:    framer.RGBA8{R: 255, G: 255, B: 255, A: 40},
}

// renderTransparentMaster composes the master card over a blurred,
// slightly darkened backdrop of the photo. The photo sits flush inside
// the side borders; the bottom band holds the card.
func renderTransparentMaster(srcImg image.Image, sc meta.ShootingContext, lib *assets.Library) (image.Image, error) {
	src := framer.FromImage(srcImg)
	w, h := src.Width(), src.Height()

	border := int(float64(h) * masterBorderRatio)
	bottomH := int(float64(h) * masterBottomRatio)

	canvasW := w + border*2
	canvasH := h + border + bottomH

	bg := framer.Backdrop(srcImg, canvasW, canvasH, tmasterBlurSigma, tmasterBrightness)
	canvas := framer.FromImage(bg)
	canvas.DrawBuffer(src, border, border)

	if err := drawMasterCard(canvas, sc, lib, bottomH, h > w, transparentMasterInk); err != nil {
		return nil, err
	}
	return canvas.NRGBA(), nil
}
