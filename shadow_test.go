package framer

import "testing"

func TestShadowPresets(t *testing.T) {
	tests := []struct {
		name string
		p    EffectProfile
		want EffectProfile
	}{
		{"subtle", SubtleShadow(), EffectProfile{Sigma: 10, OffsetY: 10, Spread: -2, Color: RGBA8{0, 0, 0, 160}}},
		{"standard", StandardShadow(), EffectProfile{Sigma: 15, OffsetY: 15, Spread: -5, Color: RGBA8{0, 0, 0, 190}}},
		{"floating", FloatingShadow(), EffectProfile{Sigma: 25, OffsetY: 30, Spread: -8, Color: RGBA8{0, 0, 0, 210}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p != tt.want {
				t.Errorf("preset = %+v, want %+v", tt.p, tt.want)
			}
		})
	}
}

func TestProfileModifiersReturnCopies(t *testing.T) {
	base := StandardShadow()

	modified := base.WithSigma(99).WithOffset(1, 2).WithSpread(3).WithColor(RGBA8{9, 9, 9, 9})

	if base != StandardShadow() {
		t.Errorf("base profile mutated: %+v", base)
	}
	want := EffectProfile{Sigma: 99, OffsetX: 1, OffsetY: 2, Spread: 3, Color: RGBA8{9, 9, 9, 9}}
	if modified != want {
		t.Errorf("modified = %+v, want %+v", modified, want)
	}
}

func TestDrawOnPaintsBelowContent(t *testing.T) {
	src := NewPixelBuffer(400, 300)
	src.Fill(RGBA8{128, 128, 128, 255})

	f, err := Expand(src, 60, 60, 60, 60, White)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	cx, cy := f.ContentCenter()
	StandardShadow().DrawOn(f, f.ContentW, f.ContentH, cx, cy)

	// The shadow is offset downward, so below the content's bottom edge
	// the white margin must have darkened.
	below := f.Canvas.PixelAt(cx, f.ContentY+f.ContentH+10)
	if below == White {
		t.Error("pixel below content unchanged, expected shadow")
	}
	if below.R >= 250 {
		t.Errorf("pixel below content barely darkened: %v", below)
	}

	// Far corners stay clean.
	if got := f.Canvas.PixelAt(2, 2); got != White {
		t.Errorf("far corner = %v, want white", got)
	}
}

func TestDrawOnTinyCanvas(t *testing.T) {
	src := NewPixelBuffer(4, 4)
	src.Fill(White)

	f, err := Expand(src, 2, 2, 2, 2, White)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	// Negative spread exceeds the content size; must clamp, not panic.
	cx, cy := f.ContentCenter()
	FloatingShadow().DrawOn(f, f.ContentW, f.ContentH, cx, cy)
}
