package styles

import (
	"image"
	"image/color"
	"math"
	"strings"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
	"github.com/Aurora0201/nikon-framer/text"
)

// Modern layout: a white mat, a script brand next to the model name, and
// the four parameters in outlined capsule badges. Ratios are against the
// bottom band height. Portrait photos scale the whole frame down so the
// band does not dominate the result.
const (
	modernBorderRatio = 0.05
	modernBottomRatio = 0.35

	modernModelScale       = 0.20
	modernScriptScaleRatio = 1.6
	modernGapBrandModel    = 0.1
	modernGapImageModel    = 0.18
	modernHeaderNudge      = 0.05
	modernScriptNudge      = 0.3
	modernModelNudge       = 0.18

	modernBadgeHeightRatio = 0.22
	modernBadgeWidthRatio  = 1.8
	modernBadgeGapRatio    = 0.40
	modernGapModelParams   = 0.15

	modernValueScale      = 0.12
	modernLabelScale      = 0.095
	modernValueNudgeRatio = 0.28

	modernPortraitScale = 0.55
)

var (
	modernBlackInk    = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	modernGrayInk     = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	modernBlueInk     = color.NRGBA{R: 35, G: 65, B: 140, A: 255}
	modernBadgeBorder = framer.RGBA8{R: 180, G: 180, B: 180, A: 255}
)

// renderWhiteModern frames the photo on a white mat with a handwritten
// brand signature, the model name and a row of outlined parameter badges
// in the bottom band.
func renderWhiteModern(srcImg image.Image, sc meta.ShootingContext, lib *assets.Library) (image.Image, error) {
	src := framer.FromImage(srcImg)
	w, h := src.Width(), src.Height()

	portraitScale := 1.0
	if h > w {
		portraitScale = modernPortraitScale
	}
	border := int(math.Round(float64(h) * modernBorderRatio * portraitScale))
	bottom := int(math.Round(float64(h) * modernBottomRatio * portraitScale))

	f, err := framer.Expand(src, border, border+bottom, border, border, framer.White)
	if err != nil {
		return nil, err
	}
	canvas := f.Canvas

	cx, cy := f.ContentCenter()
	framer.StandardShadow().DrawOn(f, f.ContentW, f.ContentH, cx, cy)
	if err := f.RepasteContent(src); err != nil {
		return nil, err
	}

	bold, err := lib.Fonts.Get(assets.Sans, assets.Bold)
	if err != nil {
		return nil, err
	}
	medium, err := lib.Fonts.Get(assets.Sans, assets.Medium)
	if err != nil {
		return nil, err
	}
	script, err := lib.Fonts.Get(assets.Script, assets.Regular)
	if err != nil {
		return nil, err
	}

	centerX := canvas.Width() / 2
	bh := float64(bottom)
	contentStartY := border + h

	// Header: script brand left of the model name, the pair centered as
	// one unit and aligned on the model's vertical center.
	modelSize := bh * modernModelScale
	scriptSize := modelSize * modernScriptScaleRatio

	brand := sc.Make
	var brandW float64
	if brand != "" {
		if brandW, err = text.Measure(script, brand, scriptSize); err != nil {
			return nil, err
		}
	}
	var modelW float64
	if sc.Model != "" {
		if modelW, err = text.Measure(medium, sc.Model, modelSize); err != nil {
			return nil, err
		}
	}
	modelMetrics, err := text.LineMetrics(medium, modelSize)
	if err != nil {
		return nil, err
	}
	scriptMetrics, err := text.LineMetrics(script, scriptSize)
	if err != nil {
		return nil, err
	}

	gapPx := int(bh * modernGapBrandModel)
	headerW := int(brandW) + gapPx + int(modelW)
	startX := centerX - headerW/2

	headerY := contentStartY + int(bh*modernGapImageModel) + int(bh*modernHeaderNudge)
	headerCenterLine := headerY + int(modelMetrics.Height)/2

	if brand != "" {
		nudge := int(scriptSize*modernScriptNudge) - int(scriptSize*brandScriptOffset(brand))
		scriptY := headerCenterLine - int(scriptMetrics.Height)/2 - nudge
		run := text.Run{Text: brand, Size: scriptSize, Color: modernBlueInk}
		if err := text.Draw(canvas.NRGBA(), script, run, startX, scriptY); err != nil {
			return nil, err
		}
	}
	if sc.Model != "" {
		modelX := startX + int(brandW) + gapPx
		modelY := headerY - int(modelSize*modernModelNudge)
		run := text.Run{Text: sc.Model, Size: modelSize, Color: modernBlueInk}
		if err := text.Draw(canvas.NRGBA(), medium, run, modelX, modelY); err != nil {
			return nil, err
		}
	}

	// Parameter badges: an outlined capsule per parameter, its label
	// underneath. Empty values leave their capsule blank rather than
	// collapsing the row.
	badgeH := int(bh * modernBadgeHeightRatio)
	badgeW := int(float64(badgeH) * modernBadgeWidthRatio)
	badgeGap := int(float64(badgeW) * modernBadgeGapRatio)
	stroke := int(float64(w) * 0.0030)
	if stroke < 4 {
		stroke = 4
	}
	radius := badgeH / 3

	valSize := bh * modernValueScale
	lblSize := bh * modernLabelScale
	valMetrics, err := text.LineMetrics(bold, valSize)
	if err != nil {
		return nil, err
	}

	badges := []struct {
		value string
		label string
	}{
		{sc.Params.ShutterBare(), "S"},
		{isoValue(sc.Params.ISO), "ISO"},
		{focalValue(sc.Params.FocalLength), "mm"},
		{sc.Params.ApertureBare(), "F"},
	}

	totalW := badgeW*len(badges) + badgeGap*(len(badges)-1)
	badgeX := centerX - totalW/2
	badgesY := headerY + int(modelMetrics.Height) + int(bh*modernGapModelParams)

	for _, b := range badges {
		outer := image.Rect(badgeX, badgesY, badgeX+badgeW, badgesY+badgeH)
		framer.FillRoundedRect(canvas, outer, radius, modernBadgeBorder)

		innerRadius := radius - stroke
		if innerRadius < 0 {
			innerRadius = 0
		}
		inner := image.Rect(badgeX+stroke, badgesY+stroke, badgeX+badgeW-stroke, badgesY+badgeH-stroke)
		framer.FillRoundedRect(canvas, inner, innerRadius, framer.White)

		badgeCenterX := badgeX + badgeW/2
		if b.value != "" {
			valH := valMetrics.Height
			valY := badgesY + badgeH/2 - int(valH)/2 - int(valH*modernValueNudgeRatio)
			run := text.Run{Text: b.value, Size: valSize, Color: modernBlackInk}
			if err := drawCenteredText(canvas, bold, run, badgeCenterX, valY); err != nil {
				return nil, err
			}
		}

		lblY := badgesY + badgeH + int(bh*0.08)
		run := text.Run{Text: b.label, Size: lblSize, Color: modernGrayInk}
		if err := drawCenteredText(canvas, medium, run, badgeCenterX, lblY); err != nil {
			return nil, err
		}

		badgeX += badgeW + badgeGap
	}

	return canvas.NRGBA(), nil
}

// brandScriptOffset returns a per-brand baseline correction, as a
// fraction of the script size, for script faces whose descenders sit
// differently across brand names.
func brandScriptOffset(brand string) float64 {
	switch strings.ToLower(strings.TrimSpace(brand)) {
	case "sony", "fujifilm", "fuji":
		return 0.05
	case "olympus":
		return 0.10
	default:
		return 0
	}
}
