package text

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// supersample is the linear oversampling factor for the weighted and
// skewed paths. Stamped stroke edges are anti-aliased by rendering at
// twice the target size and downsampling with a smoothing filter.
const supersample = 2

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Draw renders run onto dst with the top-left corner of its line box at
// (x, y). Normal-weight upright runs draw directly; weighted or skewed
// runs render through the supersampled layer and composite source-over.
func Draw(dst draw.Image, src *Source, run Run, x, y int) error {
	if run.Text == "" {
		return nil
	}

	if run.Weight == Normal && run.Skew == 0 {
		face, err := src.Face(run.Size)
		if err != nil {
			return err
		}
		defer face.Close()

		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(run.Color),
			Face: face,
			Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
		}
		d.DrawString(run.Text)
		return nil
	}

	layer, origin, err := Render(src, run)
	if err != nil {
		return err
	}
	pos := image.Pt(x-origin.X, y-origin.Y)
	draw.Draw(dst, layer.Bounds().Add(pos), layer, image.Point{}, draw.Over)
	return nil
}

// Render rasterizes run onto a tight transparent layer and returns it
// together with the position of the line box's top-left corner inside the
// layer. Callers composite the layer themselves, which the skewed model
// text uses to fine-tune placement.
func Render(src *Source, run Run) (*image.NRGBA, image.Point, error) {
	if run.Text == "" {
		return nil, image.Point{}, ErrEmptyRun
	}

	face, err := src.Face(run.Size * supersample)
	if err != nil {
		return nil, image.Point{}, err
	}
	defer face.Close()

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	contentW := font.MeasureString(face, run.Text).Ceil()
	contentH := ascent + m.Descent.Ceil()
	if contentW < 1 {
		contentW = 1
	}

	mag := run.Weight.stampMagnitude()
	pad := mag + supersample

	tmp := image.NewNRGBA(image.Rect(0, 0, contentW+2*pad, contentH+2*pad))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(run.Color),
		Face: face,
	}
	for _, off := range stampOffsets(mag) {
		d.Dot = fixed.P(pad+off.X, pad+ascent+off.Y)
		d.DrawString(run.Text)
	}

	if run.Skew != 0 {
		tmp = shearRows(tmp, run.Skew)
	}

	outW := (tmp.Rect.Dx() + supersample - 1) / supersample
	outH := (tmp.Rect.Dy() + supersample - 1) / supersample
	layer := imaging.Resize(tmp, outW, outH, imaging.Linear)

	return layer, image.Pt(pad/supersample, pad/supersample), nil
}

// stampOffsets returns the stamp positions for a weight magnitude: the
// origin itself plus an isotropic ring of 8 offsets at radius mag.
// A zero magnitude collapses to a single stamp.
func stampOffsets(mag int) []image.Point {
	if mag == 0 {
		return []image.Point{{}}
	}
	offsets := make([]image.Point, 0, 9)
	offsets = append(offsets, image.Point{})
	r := float64(mag)
	for k := 0; k < 8; k++ {
		angle := float64(k) * math.Pi / 4
		offsets = append(offsets, image.Pt(
			int(math.Round(r*math.Cos(angle))),
			int(math.Round(r*math.Sin(angle))),
		))
	}
	return offsets
}

// shearRows applies a per-row horizontal shear: row y shifts right by
// (h-y)*skew rounded, so the top of the glyphs leans in the skew
// direction while the baseline stays put.
func shearRows(src *image.NRGBA, skew float64) *image.NRGBA {
	h := src.Rect.Dy()
	w := src.Rect.Dx()
	maxShift := int(math.Ceil(math.Abs(skew) * float64(h)))
	if maxShift == 0 {
		return src
	}

	out := image.NewNRGBA(image.Rect(0, 0, w+maxShift, h))
	for y := 0; y < h; y++ {
		shift := int(math.Round(math.Abs(skew) * float64(h-y)))
		if skew < 0 {
			shift = maxShift - shift
		}
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := out.PixOffset(shift, y)
		copy(out.Pix[di:di+w*4], src.Pix[si:si+w*4])
	}
	return out
}
