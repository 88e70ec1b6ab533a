package framer

import "image/color"

// RGBA8 is a non-premultiplied 8-bit color, the pixel format of
// PixelBuffer. It matches the channel layout of image.NRGBA.
type RGBA8 struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = RGBA8{255, 255, 255, 255}
	Black       = RGBA8{0, 0, 0, 255}
	Transparent = RGBA8{0, 0, 0, 0}
)

// NRGBA returns the color as a color.NRGBA value.
func (c RGBA8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns a copy of the color with the alpha channel replaced.
func (c RGBA8) WithAlpha(a uint8) RGBA8 {
	c.A = a
	return c
}

// blend8 composites fg over bg using standard source-over blending:
// out = fg*a + bg*(1-a) per channel, alpha combined as
// fg.a + bg.a*(1-fg.a).
func blend8(bg, fg RGBA8) RGBA8 {
	if fg.A == 255 {
		return fg
	}
	if fg.A == 0 {
		return bg
	}
	a := uint32(fg.A)
	inv := 255 - a
	return RGBA8{
		R: uint8((uint32(fg.R)*a + uint32(bg.R)*inv) / 255),
		G: uint8((uint32(fg.G)*a + uint32(bg.G)*inv) / 255),
		B: uint8((uint32(fg.B)*a + uint32(bg.B)*inv) / 255),
		A: uint8(a + uint32(bg.A)*inv/255),
	}
}
