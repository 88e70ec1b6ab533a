package styles

import (
	"image"
	"image/color"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
	"github.com/Aurora0201/nikon-framer/text"
)

// Transparent classic layout. The border is proportional to the photo's
// short edge and everything else is proportional to the border.
const (
	frostedBorderRatio      = 0.08
	frostedBottomExtraRatio = 0.85

	frostedBlurSigma  = 120.0
	frostedBrightness = -150

	frostedModelScale  = 0.56
	frostedParamsScale = 0.45
	frostedLogoScale   = 0.85
	frostedGapLogoText = 0.6
	frostedGapLines    = 0.60
)

// renderTransparentClassic floats the photo in a frosted-glass panel over
// a blurred, darkened backdrop generated from the photo itself. The bottom
// band carries the whitened wordmark and model on one centered line and
// the parameters on a second.
func renderTransparentClassic(srcImg image.Image, sc meta.ShootingContext, lib *assets.Library) (image.Image, error) {
	src := framer.FromImage(srcImg)
	w, h := src.Width(), src.Height()

	short := w
	if h < short {
		short = h
	}
	border := int(float64(short) * frostedBorderRatio)
	bottomExtra := int(float64(border) * frostedBottomExtraRatio)

	canvasW := w + border*2
	canvasH := h + border*2 + bottomExtra

	bg := framer.Backdrop(srcImg, canvasW, canvasH, frostedBlurSigma, frostedBrightness)
	canvas := framer.FromImage(bg)

	// The glass panel is slightly larger than the photo; center it
	// horizontally and shift it up by half the extra height so the photo
	// itself lands exactly border pixels from the top.
	glass := framer.GlassPanel(src)
	overlayX := (canvasW - glass.Width()) / 2
	overlayY := border - (glass.Height()-h)/2

	// The panel casts a standard shadow on the backdrop before it is
	// pasted, so it reads as floating above the background.
	f := &framer.Frame{
		Canvas:   canvas,
		ContentX: overlayX,
		ContentY: overlayY,
		ContentW: glass.Width(),
		ContentH: glass.Height(),
	}
	cx, cy := f.ContentCenter()
	framer.StandardShadow().DrawOn(f, glass.Width(), glass.Height(), cx, cy)
	canvas.DrawBuffer(glass, overlayX, overlayY)

	sans, err := lib.Fonts.Get(assets.Sans, assets.Medium)
	if err != nil {
		return nil, err
	}

	modelSize := float64(border) * frostedModelScale
	paramsSize := float64(border) * frostedParamsScale
	params := sc.Params.FormatStandard()

	// Line one is [wordmark][gap][model]; measure the pieces first so the
	// whole line can be centered as a unit.
	var logo *image.NRGBA
	if word, err := lib.Logos.Get(sc.Brand, assets.Wordmark); err == nil {
		logo = whitenImage(resizeToHeight(word, int(modelSize*frostedLogoScale)))
	}

	var modelW float64
	if sc.Model != "" {
		if modelW, err = text.Measure(sans, sc.Model, modelSize); err != nil {
			return nil, err
		}
	}
	modelMetrics, err := text.LineMetrics(sans, modelSize)
	if err != nil {
		return nil, err
	}

	line1W := 0
	line1H := 0
	if logo != nil {
		line1W += logo.Rect.Dx()
	}
	if modelW > 0 {
		if logo != nil {
			line1W += int(modelSize * frostedGapLogoText)
		}
		line1W += int(modelW)
		line1H = int(modelMetrics.Height)
	}
	if line1H == 0 && logo != nil {
		line1H = logo.Rect.Dy()
	}

	var paramsW float64
	paramsH := 0
	if params != "" {
		if paramsW, err = text.Measure(sans, params, paramsSize); err != nil {
			return nil, err
		}
		m, err := text.LineMetrics(sans, paramsSize)
		if err != nil {
			return nil, err
		}
		paramsH = int(m.Height)
	}

	gapLines := int(modelSize * frostedGapLines)
	totalH := line1H + gapLines + paramsH

	bottomAreaY := border + h
	bottomAreaH := border + bottomExtra
	blockY := bottomAreaY + (bottomAreaH-totalH)/2

	if line1W > 0 {
		cursorX := (canvasW - line1W) / 2
		if logo != nil {
			offY := 0
			if line1H > logo.Rect.Dy() {
				offY = (line1H - logo.Rect.Dy()) / 2
			}
			canvas.DrawImage(logo, cursorX, blockY+offY)
			cursorX += logo.Rect.Dx() + int(modelSize*frostedGapLogoText)
		}
		if modelW > 0 {
			run := text.Run{
				Text:  sc.Model,
				Size:  modelSize,
				Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			}
			if err := text.Draw(canvas.NRGBA(), sans, run, cursorX, blockY); err != nil {
				return nil, err
			}
		}
	}

	if params != "" {
		run := text.Run{
			Text:  params,
			Size:  paramsSize,
			Color: color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		}
		line2X := (canvasW - int(paramsW)) / 2
		line2Y := blockY + line1H + gapLines
		if err := text.Draw(canvas.NRGBA(), sans, run, line2X, line2Y); err != nil {
			return nil, err
		}
	}

	return canvas.NRGBA(), nil
}
