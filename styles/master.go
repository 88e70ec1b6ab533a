package styles

import (
	"image"
	"image/color"
	"strconv"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/assets"
	"github.com/Aurora0201/nikon-framer/meta"
	"github.com/Aurora0201/nikon-framer/text"
)

// Master card layout. All ratios are against the photo height (border,
// bottom band) or the bottom band height (type sizes, margins). The card
// itself is shared between the white and transparent master styles; only
// the canvas underneath and the ink colors differ.
const (
	masterBorderRatio   = 0.03
	masterBottomRatio   = 0.4
	masterColumnGap     = 0.18
	masterLabelMargin   = 0.18
	masterRowGapRatio   = 0.001
	masterValueScale    = 0.13
	masterLabelScale    = 0.07
	masterSepScale      = 0.75
	masterHeaderMargin  = 0.3
	masterScriptScale   = 0.12
	masterSmallScale    = 0.05
	masterGapTopRatio   = -0.02
	masterGapBelowRatio = 0.1

	// Portrait photos leave a narrower band relative to their width, so
	// the parameter block shrinks to keep the columns from colliding.
	masterPortraitScale = 0.6
)

// masterInk is one color scheme for the master card.
type masterInk struct {
	value  color.NRGBA
	label  color.NRGBA
	script color.NRGBA
	title  color.NRGBA
	sep    framer.RGBA8
}

var whiteMasterInk = masterInk{
	value:  color.NRGBA{R: 40, G: 40, B: 40, A: 255},
	label:  color.NRGBA{R: 150, G: 150, B: 150, A: 255},
	script: color.NRGBA{R: 35, G: 65, B: 140, A: 255},
	title:  color.NRGBA{R: 100, G: 110, B: 120, A: 255},
	sep:    framer.RGBA8{R: 160, G: 160, B: 160, A: 255},
}

// renderWhiteMaster is the gallery-card style: a wide white mat, the photo
// floated on a diffuse shadow, a serif and script title block, and four
// parameter columns (ISO, aperture, focal length, shutter) separated by
// hairlines.
func renderWhiteMaster(srcImg image.Image, sc meta.ShootingContext, lib *assets.Library) (image.Image, error) {
	src := framer.FromImage(srcImg)
	w, h := src.Width(), src.Height()

	border := int(float64(h) * masterBorderRatio)
	bottomH := int(float64(h) * masterBottomRatio)

	f, err := framer.Expand(src, border, bottomH, border, border, framer.White)
	if err != nil {
		return nil, err
	}
	canvas := f.Canvas

	cx, cy := f.ContentCenter()
	framer.FloatingShadow().DrawOn(f, f.ContentW, f.ContentH, cx, cy)
	if err := f.RepasteContent(src); err != nil {
		return nil, err
	}

	if err := drawMasterCard(canvas, sc, lib, bottomH, h > w, whiteMasterInk); err != nil {
		return nil, err
	}
	return canvas.NRGBA(), nil
}

// drawMasterCard lays out the title block, the four parameter columns and
// the separators in the bottom band of the canvas. bottomH is the band
// height the ratios are expressed against; rows are anchored to the
// canvas bottom.
func drawMasterCard(canvas *framer.PixelBuffer, sc meta.ShootingContext, lib *assets.Library, bottomH int, isPortrait bool, ink masterInk) error {
	sans, err := lib.Fonts.Get(assets.Sans, assets.Medium)
	if err != nil {
		return err
	}
	serif, err := lib.Fonts.Get(assets.Serif, assets.Regular)
	if err != nil {
		return err
	}
	script, err := lib.Fonts.Get(assets.Script, assets.Regular)
	if err != nil {
		return err
	}

	canvasW, canvasH := canvas.Width(), canvas.Height()
	bh := float64(bottomH)
	centerX := canvasW / 2

	paramScale := 1.0
	if isPortrait {
		paramScale = masterPortraitScale
	}

	// Parameter rows are anchored to the canvas bottom; the header block
	// hangs above them.
	valSize := bh * masterValueScale * paramScale
	lblSize := bh * masterLabelScale * paramScale
	marginBottom := bh * masterLabelMargin
	rowGap := bh * masterRowGapRatio
	if isPortrait {
		rowGap *= 0.5
	}

	labelY := int(float64(canvasH) - marginBottom - lblSize)
	valueY := int(float64(labelY) - rowGap - valSize)

	scriptSize := bh * masterScriptScale
	smallSize := bh * masterSmallScale
	gapTop := bh * masterGapTopRatio
	gapBelow := bh * masterGapBelowRatio

	scriptBaseline := float64(valueY) - bh*masterHeaderMargin
	line2Y := int(scriptBaseline)
	line1Y := int(scriptBaseline - scriptSize*0.5 - gapTop)
	line3Y := int(scriptBaseline + scriptSize*0.1 + gapBelow)

	title := text.Run{Size: smallSize, Color: ink.title}
	title.Text = "MASTER SERIES"
	if err := drawCenteredText(canvas, serif, title, centerX, line1Y); err != nil {
		return err
	}
	signature := text.Run{Text: "The decisive moment", Size: scriptSize, Color: ink.script}
	if err := drawCenteredText(canvas, script, signature, centerX, line2Y); err != nil {
		return err
	}
	caption := text.Run{Text: "PHOTOGRAPH", Size: smallSize, Color: ink.title}
	if err := drawWideText(canvas, serif, caption, centerX, line3Y); err != nil {
		return err
	}

	gap := int(float64(canvasW) * masterColumnGap)
	valueRun := text.Run{Size: valSize, Color: ink.value}
	labelRun := text.Run{Size: lblSize, Color: ink.label}

	columns := []struct {
		value string
		label string
		x     int
	}{
		{isoValue(sc.Params.ISO), "ISO", centerX - gap - gap/2},
		{sc.Params.ApertureBare(), "F", centerX - gap/2},
		{focalValue(sc.Params.FocalLength), "mm", centerX + gap/2},
		{sc.Params.ShutterBare(), "S", centerX + gap + gap/2},
	}
	for _, col := range columns {
		if col.value == "" {
			continue
		}
		if err := drawColumn(canvas, sans, col.value, col.label, col.x, valueY, labelY, valueRun, labelRun); err != nil {
			return err
		}
	}

	sepTop := float64(valueY)
	sepBottom := float64(labelY) + lblSize
	sepH := (sepBottom - sepTop) * masterSepScale
	sepCenterY := int(sepTop + (sepBottom-sepTop)/2)
	for _, x := range []int{centerX - gap, centerX, centerX + gap} {
		drawSeparator(canvas, x, sepCenterY, sepH, ink.sep)
	}
	return nil
}

func isoValue(iso int) string {
	if iso <= 0 {
		return ""
	}
	return strconv.Itoa(iso)
}

func focalValue(mm int) string {
	if mm <= 0 {
		return ""
	}
	return strconv.Itoa(mm)
}
