package framer

import (
	"image"
	"image/draw"
)

// PixelBuffer is an owned rectangular RGBA8 raster, the common currency of
// every effect in the engine. Storage is row-major, non-premultiplied,
// 4 bytes per pixel; len(data) == width*height*4 always holds.
//
// A PixelBuffer is created once per source photo, mutated in place through
// a sequence of effect calls, and handed off for encoding. It is not safe
// for concurrent mutation; distinct buffers may be used from distinct
// goroutines freely.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewPixelBuffer creates a transparent pixel buffer with the given
// dimensions. It panics on non-positive dimensions; callers validate
// geometry before allocating.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic(ErrInvalidDimensions)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage creates a pixel buffer holding a copy of img. For *image.NRGBA
// inputs with packed rows this is a straight memory copy; other formats go
// through the standard draw conversion.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := NewPixelBuffer(w, h)

	if n, ok := img.(*image.NRGBA); ok && n.Stride == w*4 {
		copy(buf.data, n.Pix[n.PixOffset(bounds.Min.X, bounds.Min.Y):])
		return buf
	}

	dst := buf.NRGBA()
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return buf
}

// Width returns the width of the buffer in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// Data returns the raw pixel storage (RGBA order).
func (b *PixelBuffer) Data() []uint8 { return b.data }

// NRGBA returns an *image.NRGBA view sharing the buffer's storage.
// Mutations through the view are visible in the buffer and vice versa.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	out := &PixelBuffer{width: b.width, height: b.height, data: make([]uint8, len(b.data))}
	copy(out.data, b.data)
	return out
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c RGBA8) {
	fillRGBA(b.data, c)
}

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (b *PixelBuffer) SetPixel(x, y int, c RGBA8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}

// PixelAt returns a single pixel. Out-of-bounds coordinates return
// Transparent.
func (b *PixelBuffer) PixelAt(x, y int) RGBA8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return RGBA8{b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3]}
}

// BlendPixel composites c over the existing pixel with source-over
// blending. Out-of-bounds coordinates are ignored.
func (b *PixelBuffer) BlendPixel(x, y int, c RGBA8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	bg := RGBA8{b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3]}
	out := blend8(bg, c)
	b.data[i+0] = out.R
	b.data[i+1] = out.G
	b.data[i+2] = out.B
	b.data[i+3] = out.A
}

// scaleAlpha multiplies the alpha of a single pixel by factor in [0, 1],
// leaving the color channels untouched. Used by the corner masker's
// anti-alias band.
func (b *PixelBuffer) scaleAlpha(x, y int, factor float32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width+x)*4 + 3
	b.data[i] = uint8(float32(b.data[i]) * factor)
}

// DrawBuffer composites src onto the buffer with its top-left corner at
// (x, y), clipping to the destination bounds. Fully opaque source pixels
// are copied; translucent ones are blended source-over; fully transparent
// ones leave the destination untouched.
func (b *PixelBuffer) DrawBuffer(src *PixelBuffer, x, y int) {
	sx0, sy0 := 0, 0
	if x < 0 {
		sx0 = -x
	}
	if y < 0 {
		sy0 = -y
	}
	for sy := sy0; sy < src.height; sy++ {
		dy := y + sy
		if dy >= b.height {
			break
		}
		for sx := sx0; sx < src.width; sx++ {
			dx := x + sx
			if dx >= b.width {
				break
			}
			si := (sy*src.width + sx) * 4
			a := src.data[si+3]
			if a == 0 {
				continue
			}
			c := RGBA8{src.data[si+0], src.data[si+1], src.data[si+2], a}
			if a == 255 {
				di := (dy*b.width + dx) * 4
				b.data[di+0] = c.R
				b.data[di+1] = c.G
				b.data[di+2] = c.B
				b.data[di+3] = 255
				continue
			}
			b.BlendPixel(dx, dy, c)
		}
	}
}

// DrawImage composites img onto the buffer at (x, y). Convenience wrapper
// over DrawBuffer for decoded assets (logos, text layers).
func (b *PixelBuffer) DrawImage(img image.Image, x, y int) {
	b.DrawBuffer(FromImage(img), x, y)
}

// Whiten sets the RGB channels of every non-transparent pixel to white,
// preserving the alpha channel. Anti-aliased logo edges keep their
// coverage but lose their color, which is how wordmarks are recolored for
// dark backdrops.
func (b *PixelBuffer) Whiten() {
	for i := 0; i < len(b.data); i += 4 {
		if b.data[i+3] > 0 {
			b.data[i+0] = 255
			b.data[i+1] = 255
			b.data[i+2] = 255
		}
	}
}

// fillRGBA fills dst with a repeating 4-byte color pattern.
func fillRGBA(dst []uint8, c RGBA8) {
	if len(dst) < 4 {
		return
	}
	dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
	// Double the initialized prefix each pass.
	for n := 4; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}
