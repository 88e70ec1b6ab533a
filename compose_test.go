package framer

import (
	"bytes"
	"errors"
	"testing"
)

func gradientBuffer(w, h int) *PixelBuffer {
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetPixel(x, y, RGBA8{uint8(x * 7), uint8(y * 11), uint8(x + y), 255})
		}
	}
	return buf
}

func TestExpandZeroPaddingIsByteIdentical(t *testing.T) {
	src := gradientBuffer(16, 9)

	f, err := Expand(src, 0, 0, 0, 0, White)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if !bytes.Equal(f.Canvas.Data(), src.Data()) {
		t.Error("zero-padding canvas differs from source")
	}
	if f.ContentX != 0 || f.ContentY != 0 || f.ContentW != 16 || f.ContentH != 9 {
		t.Errorf("content geometry = %d,%d %dx%d, want 0,0 16x9",
			f.ContentX, f.ContentY, f.ContentW, f.ContentH)
	}
}

func TestExpandGeometry(t *testing.T) {
	tests := []struct {
		name                     string
		top, bottom, left, right int
		wantW, wantH             int
	}{
		{"bottom bar", 0, 30, 0, 0, 16, 39},
		{"even border", 5, 5, 5, 5, 26, 19},
		{"asymmetric", 1, 2, 3, 4, 23, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := gradientBuffer(16, 9)
			f, err := Expand(src, tt.top, tt.bottom, tt.left, tt.right, White)
			if err != nil {
				t.Fatalf("Expand: %v", err)
			}

			if f.Canvas.Width() != tt.wantW || f.Canvas.Height() != tt.wantH {
				t.Errorf("canvas = %dx%d, want %dx%d",
					f.Canvas.Width(), f.Canvas.Height(), tt.wantW, tt.wantH)
			}
			if f.ContentX != tt.left || f.ContentY != tt.top {
				t.Errorf("content origin = %d,%d, want %d,%d",
					f.ContentX, f.ContentY, tt.left, tt.top)
			}
		})
	}
}

func TestExpandPixelPlacement(t *testing.T) {
	src := gradientBuffer(8, 6)
	bg := RGBA8{1, 2, 3, 255}

	f, err := Expand(src, 2, 4, 3, 1, bg)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	canvas := f.Canvas

	// Margins are pure background.
	for _, p := range [][2]int{{0, 0}, {2, 1}, {0, 7}, {11, 11}, {5, 0}} {
		if got := canvas.PixelAt(p[0], p[1]); got != bg {
			t.Errorf("margin pixel (%d,%d) = %v, want %v", p[0], p[1], got, bg)
		}
	}

	// Content pixels land shifted by the padding.
	for _, p := range [][2]int{{0, 0}, {7, 5}, {3, 2}} {
		want := src.PixelAt(p[0], p[1])
		got := canvas.PixelAt(p[0]+3, p[1]+2)
		if got != want {
			t.Errorf("content pixel (%d,%d) = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestExpandNegativePadding(t *testing.T) {
	src := gradientBuffer(4, 4)

	_, err := Expand(src, -1, 0, 0, 0, White)
	if !errors.Is(err, ErrNegativePadding) {
		t.Errorf("err = %v, want ErrNegativePadding", err)
	}
}
