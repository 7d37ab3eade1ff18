package layer

import (
	"image/color"
	"testing"

	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/hexcolor"
)

func TestPreviewColor(t *testing.T) {
	tests := []struct {
		kind Kind
		want hexcolor.RGB
	}{
		// Line color for circle-drawing kinds, marker fill for linears.
		{KindPlane, hexcolor.RGB{R: 0, G: 0, B: 255}},
		{KindFaultPlane, hexcolor.RGB{R: 0, G: 0, B: 255}},
		{KindLine, hexcolor.RGB{R: 18, G: 131, B: 235}},
		{KindSmallCircle, hexcolor.RGB{R: 0, G: 0, B: 255}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			l := newTestLayer(t, tt.kind)
			got, err := l.PreviewColor()
			if err != nil {
				t.Fatalf("PreviewColor: %v", err)
			}
			if got != tt.want {
				t.Errorf("PreviewColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPreviewColorTracksSourceAttribute(t *testing.T) {
	plane := newTestLayer(t, KindPlane)
	plane.SetLineColor("#aa0000")
	plane.SetMarkerFill("#00aa00") // must not influence a plane's preview

	c, err := plane.PreviewColor()
	if err != nil {
		t.Fatalf("PreviewColor: %v", err)
	}
	if (c != hexcolor.RGB{R: 0xaa}) {
		t.Errorf("plane PreviewColor() = %+v, want {170 0 0}", c)
	}

	linear := newTestLayer(t, KindLine)
	linear.SetMarkerFill("#00aa00")
	linear.SetLineColor("#aa0000") // must not influence a linear's preview

	c, err = linear.PreviewColor()
	if err != nil {
		t.Fatalf("PreviewColor: %v", err)
	}
	if (c != hexcolor.RGB{G: 0xaa}) {
		t.Errorf("linear PreviewColor() = %+v, want {0 170 0}", c)
	}
}

func TestPreviewSwatch(t *testing.T) {
	l := newTestLayer(t, KindPlane)
	l.SetLineColor("#ff7e00")

	img, err := l.PreviewSwatch()
	if err != nil {
		t.Fatalf("PreviewSwatch: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != swatchSize || b.Dy() != swatchSize {
		t.Errorf("swatch size = %dx%d, want %dx%d", b.Dx(), b.Dy(), swatchSize, swatchSize)
	}

	// Every pixel carries the preview color at full opacity.
	want := color.NRGBAModel.Convert(color.NRGBA{R: 255, G: 126, B: 0, A: 255})
	for _, pt := range []struct{ x, y int }{{0, 0}, {swatchSize / 2, swatchSize / 2}, {swatchSize - 1, swatchSize - 1}} {
		got := color.NRGBAModel.Convert(img.At(pt.x, pt.y))
		if got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", pt.x, pt.y, got, want)
		}
	}
}

func TestPreviewSwatchInvalidColor(t *testing.T) {
	l := newTestLayer(t, KindLine)
	l.SetMarkerFill("chartreuse")

	if _, err := l.PreviewSwatch(); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("PreviewSwatch() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColor)
	}
}
