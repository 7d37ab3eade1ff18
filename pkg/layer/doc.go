// Package layer implements the styling and configuration model behind the
// datasets shown on a stereonet plot.
//
// A Layer wraps one externally owned tabular data store together with its
// selection view, and carries every presentation attribute the plotting
// routine reads on a redraw: great/small-circle line styling, pole and
// linear marker styling, rose diagram parameters, fault-plane toggles, and
// the contouring parameters.
//
// There is a single Layer type for all four dataset kinds (plane,
// faultplane, line, smallcircle). The kinds share the full attribute set;
// the behavior differences between them (default label, which color feeds
// the preview swatch) live in a small per-kind dispatch table. Consumers
// branch on Kind to decide which attribute groups are meaningful for a
// given layer; the layer itself never hides an attribute.
//
// Setters are deliberately permissive: they store whatever they are given
// without validation, matching the interactive-dialog contract where range
// checking happens in the widget layer. Color strings are only parsed when
// a derived-color getter runs, and a malformed triplet surfaces there as an
// INVALID_COLOR error.
package layer
