package framer

import (
	"fmt"

	"github.com/Aurora0201/nikon-framer/internal/parallel"
)

// Expand allocates a canvas of source-plus-padding size and fills it in a
// single parallel pass: padding pixels get the background color and the
// content band gets a row-level memory copy of the source. No pixel is
// painted twice.
//
// Rows fall into two classes: pure-background rows above and below the
// photo band are a single pattern fill, and mixed rows concatenate a
// background left margin, one contiguous copy of the source row and a
// background right margin. Rows are independent, so generation fans out
// across goroutines.
//
// Padding values must be non-negative; zero padding on a side is simply an
// empty margin, and zero padding on every side yields a canvas
// byte-identical to the source. A source whose storage is shorter than its
// declared dimensions surfaces ErrBufferBounds.
func Expand(src *PixelBuffer, top, bottom, left, right int, bg RGBA8) (*Frame, error) {
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		return nil, fmt.Errorf("expand canvas (t=%d b=%d l=%d r=%d): %w",
			top, bottom, left, right, ErrNegativePadding)
	}
	// A corrupt upstream buffer must not panic the batch.
	if src.height*src.width*4 > len(src.data) {
		return nil, fmt.Errorf("expand canvas: source %dx%d needs %d bytes, storage has %d: %w",
			src.width, src.height, src.width*src.height*4, len(src.data), ErrBufferBounds)
	}

	outW := src.width + left + right
	outH := src.height + top + bottom
	out := NewPixelBuffer(outW, outH)

	rowLen := outW * 4
	bgRow := make([]uint8, rowLen)
	fillRGBA(bgRow, bg)

	srcRowLen := src.width * 4

	parallel.Rows(outH, func(start, end int) {
		for y := start; y < end; y++ {
			row := out.data[y*rowLen : (y+1)*rowLen]
			if y < top || y >= top+src.height {
				copy(row, bgRow)
				continue
			}
			copy(row[:left*4], bgRow)
			sy := y - top
			copy(row[left*4:left*4+srcRowLen], src.data[sy*srcRowLen:(sy+1)*srcRowLen])
			copy(row[left*4+srcRowLen:], bgRow)
		}
	})

	return &Frame{
		Canvas:   out,
		ContentX: left,
		ContentY: top,
		ContentW: src.width,
		ContentH: src.height,
	}, nil
}
