package framer

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameContentRect(t *testing.T) {
	f := &Frame{ContentX: 3, ContentY: 2, ContentW: 10, ContentH: 5}

	r := f.ContentRect()
	if r.Min.X != 3 || r.Min.Y != 2 || r.Dx() != 10 || r.Dy() != 5 {
		t.Errorf("ContentRect = %v", r)
	}

	cx, cy := f.ContentCenter()
	if cx != 8 || cy != 4 {
		t.Errorf("ContentCenter = %d,%d, want 8,4", cx, cy)
	}
}

func TestRepasteContentRestoresPhoto(t *testing.T) {
	src := gradientBuffer(10, 8)
	f, err := Expand(src, 4, 4, 4, 4, White)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	// Scribble over the content area, then repaste.
	shadow := NewPixelBuffer(20, 20)
	shadow.Fill(RGBA8{0, 0, 0, 120})
	f.Canvas.DrawBuffer(shadow, 0, 0)

	if err := f.RepasteContent(src); err != nil {
		t.Fatalf("RepasteContent: %v", err)
	}

	for y := 0; y < 8; y++ {
		rowStart := ((y+4)*f.Canvas.Width() + 4) * 4
		canvasRow := f.Canvas.Data()[rowStart : rowStart+10*4]
		srcRow := src.Data()[y*10*4 : (y+1)*10*4]
		if !bytes.Equal(canvasRow, srcRow) {
			t.Fatalf("row %d differs after repaste", y)
		}
	}
}

func TestRepasteContentDimensionMismatch(t *testing.T) {
	src := gradientBuffer(10, 8)
	f, err := Expand(src, 1, 1, 1, 1, White)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	err = f.RepasteContent(NewPixelBuffer(9, 8))
	if !errors.Is(err, ErrBufferBounds) {
		t.Errorf("err = %v, want ErrBufferBounds", err)
	}
}
