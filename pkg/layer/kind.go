package layer

import "github.com/akositz/innstereo/pkg/errors"

// Kind identifies the semantic type of a layer. It is fixed at
// construction and never changes for the lifetime of the layer.
type Kind string

// The four layer kinds.
const (
	KindPlane       Kind = "plane"
	KindFaultPlane  Kind = "faultplane"
	KindLine        Kind = "line"
	KindSmallCircle Kind = "smallcircle"
)

// Kinds returns all layer kinds in display order.
func Kinds() []Kind {
	return []Kind{KindPlane, KindFaultPlane, KindLine, KindSmallCircle}
}

// String returns the kind tag (e.g. "faultplane").
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	_, ok := variants[k]
	return ok
}

// ParseKind maps a kind tag to its Kind.
// Returns an INVALID_KIND error for unknown tags.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", errors.New(errors.ErrCodeInvalidKind, "unknown layer kind: %q (must be plane, faultplane, line, or smallcircle)", s)
	}
	return k, nil
}

// previewSource selects which color attribute feeds the preview swatch.
type previewSource int

const (
	previewLineColor  previewSource = iota // line color (great/small circles)
	previewMarkerFill                      // marker fill (linear symbols)
)

// variant describes the per-kind behavior differences. Everything not
// listed here is shared by all kinds.
type variant struct {
	label   string        // default display label
	preview previewSource // attribute backing the preview swatch
}

// variants is the dispatch table for kind-specific behavior.
//
// Linear layers derive their preview from the marker fill because their
// visually dominant plotted feature is the marker, not a circle line; the
// swatch in a layer list has to track what the user actually sees.
var variants = map[Kind]variant{
	KindPlane:       {label: "Plane layer", preview: previewLineColor},
	KindFaultPlane:  {label: "Faultplane layer", preview: previewLineColor},
	KindLine:        {label: "Linear layer", preview: previewMarkerFill},
	KindSmallCircle: {label: "Small circle layer", preview: previewLineColor},
}
