package text

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return src
}

func alphaSum(img *image.NRGBA) int {
	sum := 0
	for i := 3; i < len(img.Pix); i += 4 {
		sum += int(img.Pix[i])
	}
	return sum
}

func TestMeasureDeterministic(t *testing.T) {
	src := testSource(t)

	first, err := Measure(src, "ISO 6400", 32)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if first <= 0 {
		t.Fatalf("width = %v, want > 0", first)
	}
	for i := 0; i < 5; i++ {
		again, err := Measure(src, "ISO 6400", 32)
		if err != nil {
			t.Fatalf("Measure: %v", err)
		}
		if again != first {
			t.Fatalf("Measure run %d = %v, want %v", i, again, first)
		}
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	src := testSource(t)

	short, err := Measure(src, "Z 6", 24)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	long, err := Measure(src, "Z 6 III", 24)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if long <= short {
		t.Errorf("longer text measured %v <= %v", long, short)
	}
}

func TestLineMetrics(t *testing.T) {
	src := testSource(t)

	m, err := LineMetrics(src, 40)
	if err != nil {
		t.Fatalf("LineMetrics: %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("metrics = %+v, want positive ascent and descent", m)
	}
	if m.Height != m.Ascent+m.Descent {
		t.Errorf("Height = %v, want %v", m.Height, m.Ascent+m.Descent)
	}
}

func TestDrawNormalWritesPixels(t *testing.T) {
	src := testSource(t)
	dst := image.NewNRGBA(image.Rect(0, 0, 200, 60))

	run := Run{Text: "f/1.8", Size: 32, Color: color.NRGBA{A: 255}}
	if err := Draw(dst, src, run, 10, 10); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if alphaSum(dst) == 0 {
		t.Error("nothing drawn")
	}
}

func TestDrawEmptyRunIsNoop(t *testing.T) {
	src := testSource(t)
	dst := image.NewNRGBA(image.Rect(0, 0, 50, 20))

	if err := Draw(dst, src, Run{Size: 16}, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if alphaSum(dst) != 0 {
		t.Error("empty run drew pixels")
	}
}

func TestRenderEmptyRun(t *testing.T) {
	src := testSource(t)

	_, _, err := Render(src, Run{Size: 16})
	if !errors.Is(err, ErrEmptyRun) {
		t.Errorf("err = %v, want ErrEmptyRun", err)
	}
}

func TestRenderWeightsThicken(t *testing.T) {
	src := testSource(t)

	coverage := make(map[Weight]int)
	for _, w := range []Weight{Normal, Medium, Bold, ExtraBold} {
		layer, _, err := Render(src, Run{
			Text:   "NIKON",
			Size:   40,
			Color:  color.NRGBA{A: 255},
			Weight: w,
		})
		if err != nil {
			t.Fatalf("Render(%v): %v", w, err)
		}
		coverage[w] = alphaSum(layer)
	}

	if coverage[Medium] <= coverage[Normal] {
		t.Errorf("Medium coverage %d <= Normal %d", coverage[Medium], coverage[Normal])
	}
	if coverage[Bold] <= coverage[Medium] {
		t.Errorf("Bold coverage %d <= Medium %d", coverage[Bold], coverage[Medium])
	}
	if coverage[ExtraBold] <= coverage[Bold] {
		t.Errorf("ExtraBold coverage %d <= Bold %d", coverage[ExtraBold], coverage[Bold])
	}
}

func TestRenderSkewWidensLayer(t *testing.T) {
	src := testSource(t)

	upright, _, err := Render(src, Run{Text: "Z 8", Size: 48, Color: color.NRGBA{A: 255}, Weight: Bold})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	skewed, _, err := Render(src, Run{Text: "Z 8", Size: 48, Color: color.NRGBA{A: 255}, Weight: Bold, Skew: ItalicSkew})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if skewed.Rect.Dx() <= upright.Rect.Dx() {
		t.Errorf("skewed width %d <= upright width %d", skewed.Rect.Dx(), upright.Rect.Dx())
	}
	if skewed.Rect.Dy() != upright.Rect.Dy() {
		t.Errorf("skew changed height: %d != %d", skewed.Rect.Dy(), upright.Rect.Dy())
	}
}

func TestRenderOriginInsideLayer(t *testing.T) {
	src := testSource(t)

	layer, origin, err := Render(src, Run{Text: "400", Size: 30, Color: color.NRGBA{A: 255}, Weight: Medium})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !origin.In(layer.Bounds()) {
		t.Errorf("origin %v outside layer %v", origin, layer.Bounds())
	}
}

func TestCenteredPlacementMatchesMeasurement(t *testing.T) {
	src := testSource(t)
	const size = 40.0

	w, err := Measure(src, "8888", size)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 400, 80))
	centerX := 200
	x := centerX - int(w/2)
	if err := Draw(dst, src, Run{Text: "8888", Size: size, Color: color.NRGBA{A: 255}}, x, 10); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// Ink bounds of the rendered run.
	minX, maxX := dst.Rect.Max.X, -1
	for py := 0; py < dst.Rect.Dy(); py++ {
		for px := 0; px < dst.Rect.Dx(); px++ {
			if dst.NRGBAAt(px, py).A > 0 {
				if px < minX {
					minX = px
				}
				if px > maxX {
					maxX = px
				}
			}
		}
	}
	if maxX < 0 {
		t.Fatal("nothing drawn")
	}

	inkCenter := float64(minX+maxX+1) / 2
	if diff := inkCenter - float64(centerX); diff < -1.5 || diff > 1.5 {
		t.Errorf("ink center %v off computed center %d by %v px", inkCenter, centerX, diff)
	}
}

func TestStampOffsets(t *testing.T) {
	if got := len(stampOffsets(0)); got != 1 {
		t.Errorf("stampOffsets(0) len = %d, want 1", got)
	}
	for mag := 1; mag <= 3; mag++ {
		offs := stampOffsets(mag)
		if len(offs) != 9 {
			t.Errorf("stampOffsets(%d) len = %d, want 9", mag, len(offs))
		}
		if offs[0] != (image.Point{}) {
			t.Errorf("stampOffsets(%d)[0] = %v, want origin", mag, offs[0])
		}
	}
}

func TestShearRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 10))
	for y := 0; y < 10; y++ {
		src.SetNRGBA(0, y, color.NRGBA{R: 255, A: 255})
	}

	out := shearRows(src, 0.5)

	// Max shift is ceil(0.5*10) = 5 extra columns.
	if out.Rect.Dx() != 9 {
		t.Fatalf("sheared width = %d, want 9", out.Rect.Dx())
	}
	// Bottom row (y=9) shifts by round(0.5*1) = 1; top row by 5.
	if out.NRGBAAt(1, 9).A == 0 {
		t.Error("bottom row not at shift 1")
	}
	if out.NRGBAAt(5, 0).A == 0 {
		t.Error("top row not at shift 5")
	}
}
