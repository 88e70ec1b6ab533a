package framer

import "testing"

func TestGlassPanelDimensions(t *testing.T) {
	// 2000x1000: thickness = 0.002 * 2000 = 4.
	src := NewPixelBuffer(2000, 1000)
	src.Fill(RGBA8{50, 100, 150, 255})

	out := GlassPanel(src)

	if out.Width() != 2008 || out.Height() != 1008 {
		t.Errorf("dims = %dx%d, want 2008x1008", out.Width(), out.Height())
	}
}

func TestGlassPanelBorderThicknessBounds(t *testing.T) {
	// Tiny source: 0.002 * 200 = 0.4, clamped up to 3.
	small := GlassPanel(NewPixelBuffer(200, 100))
	if small.Width() != 206 || small.Height() != 106 {
		t.Errorf("small dims = %dx%d, want 206x106", small.Width(), small.Height())
	}

	// Huge source: 0.002 * 8000 = 16, clamped down to 8.
	big := GlassPanel(NewPixelBuffer(8000, 6000))
	if big.Width() != 8016 || big.Height() != 6016 {
		t.Errorf("big dims = %dx%d, want 8016x6016", big.Width(), big.Height())
	}
}

func TestGlassPanelInterior(t *testing.T) {
	src := NewPixelBuffer(1000, 800)
	fill := RGBA8{50, 100, 150, 255}
	src.Fill(fill)

	out := GlassPanel(src)
	thickness := (out.Width() - 1000) / 2

	// Center of the panel is the untouched photo.
	if got := out.PixelAt(out.Width()/2, out.Height()/2); got != fill {
		t.Errorf("center = %v, want %v", got, fill)
	}
	// Edge midpoints show the translucent border band.
	border := out.PixelAt(out.Width()/2, thickness/2)
	if border.A != 130 {
		t.Errorf("border pixel = %v, want alpha 130", border)
	}
	if border.R != border.G || border.G != border.B {
		t.Errorf("border pixel = %v, want neutral tint", border)
	}
	// The rounded outer corner is fully transparent.
	if got := out.PixelAt(0, 0); got.A != 0 {
		t.Errorf("outer corner = %v, want transparent", got)
	}
}

func TestGlassPanelCornerKeepsBorderUnderArc(t *testing.T) {
	src := NewPixelBuffer(1000, 800)
	src.Fill(RGBA8{0, 0, 0, 255})

	out := GlassPanel(src)
	thickness := (out.Width() - 1000) / 2
	radius := int(float32(800) * glassRadiusRatio)

	// Just inside the content rect corner square, outside the photo arc,
	// the translucent border must show instead of the photo.
	c := out.PixelAt(thickness+1, thickness+1)
	if c.A == 255 && c.R == 0 {
		t.Errorf("corner pixel = %v, want border showing through", c)
	}

	// Well inside the arc the photo is opaque black again.
	inner := out.PixelAt(thickness+radius+2, thickness+radius+2)
	want := RGBA8{0, 0, 0, 255}
	if inner != want {
		t.Errorf("inner pixel = %v, want %v", inner, want)
	}
}
