package styles

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	framer "github.com/Aurora0201/nikon-framer"
	"github.com/Aurora0201/nikon-framer/text"
)

// resizeToHeight scales img to the given height preserving aspect ratio.
// Logos are placed by height in every style, with width following.
func resizeToHeight(img image.Image, h int) *image.NRGBA {
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, 0, h, imaging.Lanczos)
}

// whitenImage returns a copy of img with every non-transparent pixel
// forced to white, keeping the alpha channel. Dark wordmarks become
// usable on dark backdrops.
func whitenImage(img image.Image) *image.NRGBA {
	buf := framer.FromImage(img)
	buf.Whiten()
	return buf.NRGBA()
}

// drawCenteredText draws run horizontally centered on centerX with the top
// of its line box at y.
func drawCenteredText(buf *framer.PixelBuffer, src *text.Source, run text.Run, centerX, y int) error {
	w, err := text.Measure(src, run.Text, run.Size)
	if err != nil {
		return err
	}
	return text.Draw(buf.NRGBA(), src, run, centerX-int(w/2), y)
}

// drawWideText draws run character by character with a tracking of
// 0.4 times the text size between glyphs, centered on centerX. Used for
// the spaced-out caption lines on the master card.
func drawWideText(buf *framer.PixelBuffer, src *text.Source, run text.Run, centerX, y int) error {
	tracking := run.Size * 0.4

	total := 0.0
	widths := make([]float64, 0, len(run.Text))
	for _, r := range run.Text {
		w, err := text.Measure(src, string(r), run.Size)
		if err != nil {
			return err
		}
		widths = append(widths, w)
		total += w + tracking
	}
	if total > 0 {
		total -= tracking
	}

	x := float64(centerX) - total/2
	i := 0
	for _, r := range run.Text {
		glyph := run
		glyph.Text = string(r)
		if err := text.Draw(buf.NRGBA(), src, glyph, int(math.Round(x)), y); err != nil {
			return err
		}
		x += widths[i] + tracking
		i++
	}
	return nil
}

// drawColumn draws a value over its label, both centered on x. Parameter
// columns on the master card use absolute rows so all four columns align
// regardless of glyph heights.
func drawColumn(buf *framer.PixelBuffer, src *text.Source, value, label string, x, valueY, labelY int, valueRun, labelRun text.Run) error {
	valueRun.Text = value
	if err := drawCenteredText(buf, src, valueRun, x, valueY); err != nil {
		return err
	}
	labelRun.Text = label
	return drawCenteredText(buf, src, labelRun, x, labelY)
}

// drawSeparator fills a vertical divider line centered on (x, centerY).
func drawSeparator(buf *framer.PixelBuffer, x, centerY int, height float64, c framer.RGBA8) {
	thickness := int(math.Ceil(float64(buf.Width()) * 0.0015))
	if thickness < 4 {
		thickness = 4
	}
	h := int(height)
	rect := image.Rect(x-thickness/2, centerY-h/2, x-thickness/2+thickness, centerY-h/2+h)
	framer.FillRoundedRect(buf, rect, 0, c)
}
