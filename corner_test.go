package framer

import (
	"image"
	"testing"
)

func TestCornerCoverage(t *testing.T) {
	const radius = 20

	// The outermost pixel of the corner square is fully outside the arc.
	if cov := cornerCoverage(0, 0, radius); cov != 0 {
		t.Errorf("outermost pixel coverage = %v, want 0", cov)
	}
	// The innermost pixel sits next to the arc center and is fully inside.
	if cov := cornerCoverage(radius-1, radius-1, radius); cov != 1 {
		t.Errorf("innermost pixel coverage = %v, want 1", cov)
	}
	// A pixel on the axis right at the arc edge is partially covered.
	part := cornerCoverage(0, radius-1, radius)
	if part <= 0 || part >= 1 {
		t.Errorf("band coverage = %v, want in (0,1)", part)
	}
}

func TestRoundCornersIsCornerLocal(t *testing.T) {
	const w, h, radius = 40, 30, 8

	buf := gradientBuffer(w, h)
	before := buf.Clone()

	RoundCorners(buf, image.Rect(0, 0, w, h), radius)

	// Everything outside the four radius x radius corner squares is
	// byte-identical to the input.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inCornerX := x < radius || x >= w-radius
			inCornerY := y < radius || y >= h-radius
			if inCornerX && inCornerY {
				continue
			}
			if got, want := buf.PixelAt(x, y), before.PixelAt(x, y); got != want {
				t.Fatalf("non-corner pixel (%d,%d) changed: %v -> %v", x, y, want, got)
			}
		}
	}

	// The extreme corner pixels are fully masked out.
	for _, p := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		if got := buf.PixelAt(p[0], p[1]); got.A != 0 {
			t.Errorf("corner pixel (%d,%d) alpha = %d, want 0", p[0], p[1], got.A)
		}
	}
}

func TestClampRadius(t *testing.T) {
	rect := image.Rect(0, 0, 10, 30)

	if got := clampRadius(rect, 8); got != 5 {
		t.Errorf("clampRadius(10x30, 8) = %d, want 5", got)
	}
	if got := clampRadius(rect, 3); got != 3 {
		t.Errorf("clampRadius(10x30, 3) = %d, want 3", got)
	}
	if got := clampRadius(rect, -1); got != 0 {
		t.Errorf("clampRadius(10x30, -1) = %d, want 0", got)
	}
}

func TestFillRoundedRectZeroRadius(t *testing.T) {
	buf := NewPixelBuffer(6, 6)
	fill := RGBA8{200, 10, 10, 255}

	FillRoundedRect(buf, image.Rect(1, 1, 5, 5), 0, fill)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 5 && y >= 1 && y < 5
			got := buf.PixelAt(x, y)
			if inside && got != fill {
				t.Fatalf("inside pixel (%d,%d) = %v, want %v", x, y, got, fill)
			}
			if !inside && got.A != 0 {
				t.Fatalf("outside pixel (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestFillRoundedRectCutsCorners(t *testing.T) {
	buf := NewPixelBuffer(40, 40)

	FillRoundedRect(buf, image.Rect(0, 0, 40, 40), 10, RGBA8{0, 0, 255, 255})

	if got := buf.PixelAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", got.A)
	}
	if got := buf.PixelAt(20, 20); got.A != 255 {
		t.Errorf("center pixel alpha = %d, want 255", got.A)
	}
	if got := buf.PixelAt(20, 0); got.A != 255 {
		t.Errorf("top edge midpoint alpha = %d, want 255", got.A)
	}
}

func TestFillCornersLeavesInterior(t *testing.T) {
	const w, h, radius = 30, 30, 6

	buf := gradientBuffer(w, h)
	center := buf.PixelAt(15, 15)

	FillCorners(buf, image.Rect(0, 0, w, h), radius, White)

	if got := buf.PixelAt(15, 15); got != center {
		t.Errorf("interior pixel changed: %v -> %v", center, got)
	}
	// The extreme corners are painted with the fill color.
	if got := buf.PixelAt(0, 0); got != White {
		t.Errorf("corner pixel = %v, want white", got)
	}
}
