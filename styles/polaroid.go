package styles

import (
	"image"
	"image/color"
	"math"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
	"github.com/Aurora0201/nikon-framer/text"
)

// Polaroid layout: even side and top borders, a tall bottom band, and the
// logo and parameter line stacked in its center.
const (
	polaroidSideRatio    = 0.05
	polaroidBottomFactor = 4.5
	polaroidFontScale    = 0.8
	polaroidLogoScale    = 1.0
	polaroidGapRatio     = 0.6
)

var polaroidTextColor = color.NRGBA{R: 20, G: 20, B: 20, A: 255}

// renderWhitePolaroid frames the photo instant-print style. The photo gets
// a soft contact shadow so it reads as sitting on the paper rather than
// printed into it.
func renderWhitePolaroid(srcImg image.Image, sc meta.ShootingContext, lib *assets.Library) (image.Image, error) {
	src := framer.FromImage(srcImg)
	w, h := src.Width(), src.Height()

	short := w
	if h < short {
		short = h
	}
	border := int(math.Round(float64(short) * polaroidSideRatio))
	bottomArea := int(math.Round(float64(border) * polaroidBottomFactor))

	f, err := framer.Expand(src, border, bottomArea, border, border, framer.White)
	if err != nil {
		return nil, err
	}
	canvas := f.Canvas

	cx, cy := f.ContentCenter()
	framer.SubtleShadow().DrawOn(f, f.ContentW, f.ContentH, cx, cy)
	if err := f.RepasteContent(src); err != nil {
		return nil, err
	}

	sans, err := lib.Fonts.Get(assets.Sans, assets.Medium)
	if err != nil {
		return nil, err
	}

	fontSize := float64(border) * polaroidFontScale
	params := sc.Params.FormatStandard()

	var logo *image.NRGBA
	if word, err := lib.Logos.Get(sc.Brand, assets.Wordmark); err == nil {
		logo = resizeToHeight(word, int(float64(border)*polaroidLogoScale))
	}

	textH := 0.0
	if params != "" {
		m, err := text.LineMetrics(sans, fontSize)
		if err != nil {
			return nil, err
		}
		textH = m.Height
	}

	// Stack: logo, gap, params; centered vertically in the bottom band.
	gap := fontSize * polaroidGapRatio
	totalH := 0.0
	if logo != nil {
		totalH += float64(logo.Rect.Dy())
	}
	if logo != nil && params != "" {
		totalH += gap
	}
	totalH += textH

	footerCenterY := float64(border+h) + float64(bottomArea)/2
	cursorY := int(footerCenterY - totalH/2)
	centerX := canvas.Width() / 2

	if logo != nil {
		f.PasteImage(logo, centerX-logo.Rect.Dx()/2, cursorY)
		cursorY += logo.Rect.Dy() + int(gap)
	}

	if params != "" {
		run := text.Run{Text: params, Size: fontSize, Color: polaroidTextColor}
		if err := drawCenteredText(canvas, sans, run, centerX, cursorY); err != nil {
			return nil, err
		}
	}

	return canvas.NRGBA(), nil
}
