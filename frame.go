package framer

import "image"

// Frame is the working canvas of one composition plus the location of the
// photo content inside it. Later effect steps (shadow centering, glass
// overlay, text placement) read the content geometry from the frame
// instead of re-deriving it from padding arithmetic.
//
// A Frame is passed by pointer through a single photo's pipeline and never
// shared between photos.
type Frame struct {
	Canvas *PixelBuffer

	// ContentX, ContentY is the top-left corner of the photo content
	// inside the canvas; ContentW, ContentH are its dimensions.
	ContentX, ContentY int
	ContentW, ContentH int
}

// ContentRect returns the content area as an image.Rectangle in canvas
// coordinates.
func (f *Frame) ContentRect() image.Rectangle {
	return image.Rect(f.ContentX, f.ContentY, f.ContentX+f.ContentW, f.ContentY+f.ContentH)
}

// ContentCenter returns the center of the content area in canvas
// coordinates.
func (f *Frame) ContentCenter() (x, y int) {
	return f.ContentX + f.ContentW/2, f.ContentY + f.ContentH/2
}

// PasteBuffer composites src onto the canvas at (x, y) with source-over
// blending.
func (f *Frame) PasteBuffer(src *PixelBuffer, x, y int) {
	f.Canvas.DrawBuffer(src, x, y)
}

// PasteImage composites a decoded image onto the canvas at (x, y).
func (f *Frame) PasteImage(img image.Image, x, y int) {
	f.Canvas.DrawImage(img, x, y)
}

// RepasteContent copies src back into the content area, byte for byte.
// Used after a shadow pass so the photo sits above its own shadow.
// Returns ErrBufferBounds if src does not match the content dimensions.
func (f *Frame) RepasteContent(src *PixelBuffer) error {
	if src.width != f.ContentW || src.height != f.ContentH {
		return ErrBufferBounds
	}
	dst := f.Canvas
	for sy := 0; sy < src.height; sy++ {
		dy := f.ContentY + sy
		if dy < 0 || dy >= dst.height {
			continue
		}
		di := (dy*dst.width + f.ContentX) * 4
		si := sy * src.width * 4
		copy(dst.data[di:di+src.width*4], src.data[si:si+src.width*4])
	}
	return nil
}
