package framer

import "image"

// Glass panel tuning constants, empirically chosen on the blurred-backdrop
// styles. The radius is proportional to the shorter photo side; the border
// thickness is proportional to the longer side with absolute bounds so it
// never vanishes on small previews or balloons on large originals.
const (
	glassRadiusRatio = 0.03
	glassBorderRatio = 0.002
	glassBorderMin   = 3
	glassBorderMax   = 8
	glassBorderAlpha = 130
)

// GlassPanel wraps src in a translucent rounded-corner "frosted glass"
// border and returns the result on a transparent canvas, ready for pasting
// over a blurred backdrop.
//
// The final canvas is allocated once. The border is a rounded rect painted
// under where the photo will sit, and the photo itself is copied row by
// row for the interior cross; only the four corner squares take the
// per-pixel arc test, where excluded pixels keep the border showing
// through and the one-pixel band blends photo over border.
func GlassPanel(src *PixelBuffer) *PixelBuffer {
	w, h := src.Width(), src.Height()

	short, long := w, h
	if h < w {
		short, long = h, w
	}
	radius := int(float32(short) * glassRadiusRatio)
	thickness := int(float32(long) * glassBorderRatio)
	if thickness < glassBorderMin {
		thickness = glassBorderMin
	} else if thickness > glassBorderMax {
		thickness = glassBorderMax
	}
	borderColor := RGBA8{255, 255, 255, glassBorderAlpha}

	out := NewPixelBuffer(w+2*thickness, h+2*thickness)
	FillRoundedRect(out, image.Rect(0, 0, out.width, out.height), radius+thickness, borderColor)

	contentRect := image.Rect(thickness, thickness, thickness+w, thickness+h)

	// Interior cross: straight row copies, clipped around the corner
	// squares on the top and bottom bands.
	for sy := 0; sy < h; sy++ {
		x0, x1 := 0, w
		if sy < radius || sy >= h-radius {
			x0 += radius
			x1 -= radius
		}
		if x0 >= x1 {
			continue
		}
		dy := thickness + sy
		di := (dy*out.width + thickness + x0) * 4
		si := (sy*w + x0) * 4
		copy(out.data[di:di+(x1-x0)*4], src.data[si:si+(x1-x0)*4])
	}

	// Corner squares: arc-test each photo pixel against the rounded
	// content rect, keeping the border where the photo is excluded.
	for _, corner := range cornerOrigins(contentRect) {
		ox, oy, sx, sy := corner[0], corner[1], corner[2], corner[3]
		for j := 0; j < radius; j++ {
			for i := 0; i < radius; i++ {
				cov := cornerCoverage(i, j, radius)
				if cov <= 0 {
					continue
				}
				dx, dy := ox+sx*i, oy+sy*j
				p := src.PixelAt(dx-thickness, dy-thickness)
				if cov < 1 {
					p.A = uint8(float32(p.A) * cov)
				}
				if p.A == 255 {
					out.SetPixel(dx, dy, p)
				} else if p.A > 0 {
					out.BlendPixel(dx, dy, p)
				}
			}
		}
	}

	return out
}
