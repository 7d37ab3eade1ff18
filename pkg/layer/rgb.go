package layer

import "github.com/akositz/innstereo/pkg/hexcolor"

// The derived-color getters parse a stored hex triplet into channel values
// on every call. Parsing is lazy on purpose: the setters accept anything,
// and a malformed color only surfaces here, as an INVALID_COLOR error the
// caller decides how to recover from.
//
// None of these encode the layer's alpha attributes; transparency stays a
// separate float on the layer.

// LineRGB returns the parsed circle line color. This is the color of the
// great circles in plane and faultplane layers and of the small circles in
// small circle layers.
func (l *Layer) LineRGB() (hexcolor.RGB, error) {
	return hexcolor.Parse(l.lineColor)
}

// MarkerRGB returns the parsed linear marker fill color.
func (l *Layer) MarkerRGB() (hexcolor.RGB, error) {
	return hexcolor.Parse(l.markerFill)
}

// MarkerEdgeRGB returns the parsed linear marker edge color.
func (l *Layer) MarkerEdgeRGB() (hexcolor.RGB, error) {
	return hexcolor.Parse(l.markerEdgeColor)
}

// PoleRGB returns the parsed pole fill color.
func (l *Layer) PoleRGB() (hexcolor.RGB, error) {
	return hexcolor.Parse(l.poleFill)
}

// PoleEdgeRGB returns the parsed pole edge color.
func (l *Layer) PoleEdgeRGB() (hexcolor.RGB, error) {
	return hexcolor.Parse(l.poleEdgeColor)
}

// ContourLineRGB returns the parsed contour line color.
func (l *Layer) ContourLineRGB() (hexcolor.RGB, error) {
	return hexcolor.Parse(l.contourLineColor)
}
