package framer

import (
	"image"
	"testing"
)

func TestBlurScaleSteps(t *testing.T) {
	// Short edge comfortably above the floor so the raw steps apply.
	const edge = 4000

	tests := []struct {
		radius float64
		want   float64
	}{
		{0, 1.0},
		{1.9, 1.0},
		{2, 0.5},
		{9.9, 0.5},
		{10, 0.25},
		{29.9, 0.25},
		{30, 0.125},
		{120, 0.125},
	}

	for _, tt := range tests {
		if got := blurScale(tt.radius, edge); got != tt.want {
			t.Errorf("blurScale(%v, %d) = %v, want %v", tt.radius, edge, got, tt.want)
		}
	}
}

func TestBlurScaleShortEdgeFloor(t *testing.T) {
	// 0.125 * 400 = 50 < 150, so the floor lifts the scale to 150/400.
	got := blurScale(120, 400)
	want := 150.0 / 400.0
	if got != want {
		t.Errorf("blurScale(120, 400) = %v, want %v", got, want)
	}

	// A short edge already below the floor caps the scale at 1.
	if got := blurScale(120, 100); got != 1 {
		t.Errorf("blurScale(120, 100) = %v, want 1", got)
	}
}

func TestBlurAtScaleEffectiveRadius(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2000, 1600))

	blurred, effective, scale := BlurAtScale(img, 40)

	if scale != 0.125 {
		t.Errorf("scale = %v, want 0.125", scale)
	}
	if effective != 5 {
		t.Errorf("effective = %v, want 5", effective)
	}
	wantW, wantH := 250, 200
	if blurred.Rect.Dx() != wantW || blurred.Rect.Dy() != wantH {
		t.Errorf("blurred dims = %dx%d, want %dx%d",
			blurred.Rect.Dx(), blurred.Rect.Dy(), wantW, wantH)
	}
}

func TestBlurAtScaleZeroRadius(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 300, 200))

	blurred, effective, scale := BlurAtScale(img, 0)

	if scale != 1 || effective != 0 {
		t.Errorf("scale, effective = %v, %v, want 1, 0", scale, effective)
	}
	if blurred.Rect.Dx() != 300 || blurred.Rect.Dy() != 200 {
		t.Errorf("dims changed: %dx%d", blurred.Rect.Dx(), blurred.Rect.Dy())
	}
}
