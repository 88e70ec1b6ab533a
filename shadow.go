package framer

import (
	"image"
	"math"

	"github.com/chewxy/math32"
	"github.com/disintegration/imaging"
)

// ReferenceSize is the canvas dimension, in pixels, against which every
// proportional effect parameter is defined. A profile tuned on a 1000 px
// canvas is linearly rescaled to the actual canvas at apply time, so the
// same profile reads identically from small previews to full-size exports.
const ReferenceSize = 1000

// EffectProfile declaratively describes a diffuse drop shadow. All fields
// are expressed at ReferenceSize; DrawOn rescales them to the target
// canvas. Profiles are immutable value types: the With* modifiers return
// adjusted copies and never mutate a shared profile.
type EffectProfile struct {
	// Sigma is the Gaussian blur radius of the shadow edge.
	Sigma float32

	// OffsetX, OffsetY shift the shadow relative to the content center.
	OffsetX, OffsetY int

	// Spread grows the silhouette before blurring. Negative values shrink
	// it, simulating tight contact shadows.
	Spread int

	// Color tints the shadow; its alpha sets the peak opacity.
	Color RGBA8
}

// SubtleShadow is the preset for small, lightly raised elements.
func SubtleShadow() EffectProfile {
	return EffectProfile{Sigma: 10, OffsetY: 10, Spread: -2, Color: RGBA8{0, 0, 0, 160}}
}

// StandardShadow is the preset for cards and photo panels.
func StandardShadow() EffectProfile {
	return EffectProfile{Sigma: 15, OffsetY: 15, Spread: -5, Color: RGBA8{0, 0, 0, 190}}
}

// FloatingShadow is the preset for elements lifted well off the surface.
func FloatingShadow() EffectProfile {
	return EffectProfile{Sigma: 25, OffsetY: 30, Spread: -8, Color: RGBA8{0, 0, 0, 210}}
}

// WithSigma returns a copy of the profile with the blur radius replaced.
func (p EffectProfile) WithSigma(sigma float32) EffectProfile {
	p.Sigma = sigma
	return p
}

// WithOffset returns a copy of the profile with the offset replaced.
func (p EffectProfile) WithOffset(x, y int) EffectProfile {
	p.OffsetX, p.OffsetY = x, y
	return p
}

// WithSpread returns a copy of the profile with the spread replaced.
func (p EffectProfile) WithSpread(spread int) EffectProfile {
	p.Spread = spread
	return p
}

// WithColor returns a copy of the profile with the color replaced.
func (p EffectProfile) WithColor(c RGBA8) EffectProfile {
	p.Color = c
	return p
}

// DrawOn renders the shadow of a contentW-by-contentH rectangle centered
// at (centerX, centerY) onto the frame's canvas, beneath nothing: callers
// paste the content afterwards (or use Frame.RepasteContent) so it covers
// the shadow's center.
//
// The silhouette is built and blurred at a reduced resolution chosen from
// the scaled sigma, then linearly upsampled, so the cost is independent of
// the canvas resolution.
func (p EffectProfile) DrawOn(f *Frame, contentW, contentH, centerX, centerY int) {
	canvasW, canvasH := f.Canvas.Width(), f.Canvas.Height()

	ratio := math32.Max(float32(canvasW), float32(canvasH)) / ReferenceSize
	sigma := float64(p.Sigma * ratio)
	offsetX := int(math.Round(float64(p.OffsetX) * float64(ratio)))
	offsetY := int(math.Round(float64(p.OffsetY) * float64(ratio)))
	spread := int(math.Round(float64(p.Spread) * float64(ratio)))

	// Silhouette clamps to 1x1 so a negative spread can never produce a
	// zero-sized intermediate buffer.
	shadowW := contentW + 2*spread
	if shadowW < 1 {
		shadowW = 1
	}
	shadowH := contentH + 2*spread
	if shadowH < 1 {
		shadowH = 1
	}

	shortEdge := shadowW
	if shadowH < shortEdge {
		shortEdge = shadowH
	}
	scale := blurScale(sigma, shortEdge)

	tinyW := int(math.Ceil(float64(shadowW) * scale))
	tinyH := int(math.Ceil(float64(shadowH) * scale))
	if tinyW < 1 {
		tinyW = 1
	}
	if tinyH < 1 {
		tinyH = 1
	}
	tinySigma := sigma * scale
	tinyPad := int(math.Ceil(tinySigma * 3))

	// Solid tinted silhouette with enough padding for the blur tails.
	tiny := NewPixelBuffer(tinyW+2*tinyPad, tinyH+2*tinyPad)
	for y := tinyPad; y < tinyPad+tinyH; y++ {
		i := (y*tiny.width + tinyPad) * 4
		fillRGBA(tiny.data[i:i+tinyW*4], p.Color)
	}

	var layer *image.NRGBA
	if tinySigma > 0 {
		layer = imaging.Blur(tiny.NRGBA(), tinySigma)
	} else {
		layer = tiny.NRGBA()
	}

	fullPad := int(math.Ceil(float64(tinyPad) / scale))
	fullW := shadowW + 2*fullPad
	fullH := shadowH + 2*fullPad
	layer = imaging.Resize(layer, fullW, fullH, imaging.Linear)

	x := centerX + offsetX - fullW/2
	y := centerY + offsetY - fullH/2
	f.Canvas.DrawImage(layer, x, y)

	logger().Debug("shadow cast",
		"canvas_w", canvasW, "canvas_h", canvasH,
		"sigma", sigma, "scale", scale, "layer_w", fullW, "layer_h", fullH)
}
