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

// White classic layout. Every constant is proportional to the bar height,
// which is itself proportional to the photo height, so the style scales
// with the photo. baseH is the reference unit for the logo line.
const (
	classicBottomRatio   = 0.14
	classicBaseRatio     = 0.25
	classicModelScale    = 0.95
	classicParamsScale   = 0.22
	classicWordmarkScale = 1.15
	classicSymbolScale   = 0.9
	classicIconScale     = 0.65
	classicGapIconRatio  = 0.25
	classicMarginRatio   = 0.4
	classicLineGapRatio  = 0.1

	// classicSkewFix compensates for the transparent padding around the
	// sheared model text layer so it lines up with the symbol.
	classicSkewFix = -10

	// classicModelLift nudges the bottom-aligned model text off the
	// symbol's bottom edge.
	classicModelLift = -0.20
)

// renderWhiteClassic is the minimal bottom-bar style: the photo on top,
// and below it a white bar with the brand icon on the left, then
// wordmark, series symbol, sheared model name on one line and a grey
// parameter line underneath.
func renderWhiteClassic(srcImg image.Image, sc meta.ShootingContext, lib *assets.Library) (image.Image, error) {
	src := framer.FromImage(srcImg)
	h := src.Height()

	bottomH := int(float64(h) * classicBottomRatio)
	baseH := float64(bottomH) * classicBaseRatio

	f, err := framer.Expand(src, 0, bottomH, 0, 0, framer.White)
	if err != nil {
		return nil, err
	}
	canvas := f.Canvas

	sans, err := lib.Fonts.Get(assets.Sans, assets.Bold)
	if err != nil {
		return nil, err
	}

	marginLeft := int(float64(bottomH) * classicMarginRatio)
	gapIconText := int(float64(bottomH) * classicGapIconRatio)
	lineGap := int(float64(bottomH) * classicLineGapRatio)
	paramsSize := float64(bottomH) * classicParamsScale
	line1H := baseH * classicWordmarkScale

	barCenterY := float64(h) + float64(bottomH)/2
	totalBlockH := line1H + float64(lineGap) + paramsSize
	line1Y := int(math.Round(barCenterY - totalBlockH/2))

	// Brand icon on the far left, vertically centered in the bar. A
	// missing asset skips the element and the line starts at the margin.
	startX := marginLeft
	if icon, err := lib.Logos.Get(sc.Brand, assets.Icon); err == nil {
		scaled := resizeToHeight(icon, int(float64(bottomH)*classicIconScale))
		iconY := int(barCenterY) - scaled.Rect.Dy()/2
		f.PasteImage(scaled, marginLeft, iconY)
		startX = marginLeft + scaled.Rect.Dx() + gapIconText
	}

	cursorX := startX
	if word, err := lib.Logos.Get(sc.Brand, assets.Wordmark); err == nil {
		scaled := resizeToHeight(word, int(line1H))
		y := line1Y + (int(line1H)-scaled.Rect.Dy())/2
		f.PasteImage(scaled, cursorX, y)
		cursorX += scaled.Rect.Dx() + int(baseH*0.3)
	}

	// The symbol's bottom edge is the alignment baseline for the model
	// text that follows it.
	symbolBottom := line1Y + int(line1H)
	if sym, err := lib.Logos.Get(sc.Brand, assets.SymbolZ); err == nil {
		scaled := resizeToHeight(sym, int(baseH*classicSymbolScale))
		y := line1Y + (int(line1H)-scaled.Rect.Dy())/2
		f.PasteImage(scaled, cursorX, y)
		symbolBottom = y + scaled.Rect.Dy()
		cursorX += scaled.Rect.Dx() + int(baseH*0.15)
	}

	if sc.Model != "" {
		run := text.Run{
			Text:   sc.Model,
			Size:   baseH * classicModelScale,
			Color:  color.NRGBA{A: 255},
			Weight: text.Bold,
			Skew:   text.ItalicSkew,
		}
		layer, _, err := text.Render(sans, run)
		if err != nil {
			return nil, err
		}
		lift := int(baseH * classicModelLift)
		drawY := symbolBottom - layer.Rect.Dy() - lift
		f.PasteImage(layer, cursorX+classicSkewFix, drawY)
	}

	if params := sc.Params.FormatStandard(); params != "" {
		run := text.Run{
			Text:  params,
			Size:  paramsSize,
			Color: color.NRGBA{R: 100, G: 100, B: 100, A: 255},
		}
		line2Y := line1Y + int(line1H) + lineGap
		if err := text.Draw(canvas.NRGBA(), sans, run, startX, line2Y); err != nil {
			return nil, err
		}
	}

	return canvas.NRGBA(), nil
}
