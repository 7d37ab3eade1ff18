package layer

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/akositz/innstereo/pkg/hexcolor"
)

// swatchSize is the edge length in pixels of the preview swatch bitmap.
const swatchSize = 16

// PreviewColor returns the layer's representative color: the marker fill
// for linear layers, the circle line color for every other kind. The layer
// list shows this color next to each layer so the swatch matches the
// dominant plotted feature.
func (l *Layer) PreviewColor() (hexcolor.RGB, error) {
	switch variants[l.kind].preview {
	case previewMarkerFill:
		return hexcolor.Parse(l.markerFill)
	default:
		return hexcolor.Parse(l.lineColor)
	}
}

// PreviewSwatch renders the preview color as a filled 16x16 bitmap at full
// opacity, suitable for the colored squares in a layer list. A malformed
// stored color surfaces here as an INVALID_COLOR error.
func (l *Layer) PreviewSwatch() (image.Image, error) {
	c, err := l.PreviewColor()
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(swatchSize, swatchSize)
	dc.SetColor(c.NRGBA(0xff))
	dc.Clear()
	return dc.Image(), nil
}
