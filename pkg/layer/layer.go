package layer

import "github.com/akositz/innstereo/pkg/errors"

// Store is the externally owned tabular data store a layer is bound to.
// The store holds the individual features of the dataset as rows. A layer
// keeps a non-owning reference and returns it unchanged; it never reads or
// mutates rows itself.
type Store interface {
	// RowCount returns the number of feature rows in the store.
	RowCount() int
}

// View is the display/selection view bound 1:1 to a layer's store.
type View interface {
	// Binding returns the store this view was created for.
	Binding() Store
}

// Layer holds the full styling configuration for one stereonet dataset.
//
// All attributes are initialized to fixed defaults at construction and are
// mutated in place through their setters for the rest of the layer's life.
// The store/view pair and the kind are fixed at construction.
type Layer struct {
	kind  Kind
	label string
	store Store
	view  View

	// Great circle / small circle properties
	renderCircles bool
	lineColor     string
	lineWidth     float64
	lineStyle     string
	lineAlpha     float64
	capStyle      string

	// Pole properties
	renderPoles   bool
	poleStyle     string
	poleSize      float64
	poleFill      string
	poleEdgeColor string
	poleEdgeWidth float64
	poleAlpha     float64

	// Linear properties
	renderLinears   bool
	markerStyle     string
	markerSize      float64
	markerFill      string
	markerEdgeColor string
	markerEdgeWidth float64
	markerAlpha     float64

	// Rose diagram properties
	roseSpacing float64
	roseBottom  float64

	// Faultplane properties
	drawHoeppener bool
	drawLPPlane   bool

	// Contours
	drawContourFills    bool
	drawContourLines    bool
	drawContourLabels   bool
	renderPoleContours  bool
	renderLineContours  bool
	colormap            string
	contourResolution   int
	contourMethod       string
	contourSigma        float64
	contourLineColor    string
	contourUseLineColor bool
	contourLineWidth    float64
	contourLineStyle    string
	contourLabelSize    float64
}

// New creates a layer of the given kind bound to store and view.
//
// Every styling attribute is initialized to its fixed default; the default
// label comes from the kind's dispatch table. The binding is checked once
// here and never again: a nil store or view, or a view bound to a different
// store, is a programmer error and fails fast.
func New(kind Kind, store Store, view View) (*Layer, error) {
	v, ok := variants[kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown layer kind: %q", kind)
	}
	if store == nil {
		return nil, errors.New(errors.ErrCodeMissingStore, "layer requires a data store")
	}
	if view == nil {
		return nil, errors.New(errors.ErrCodeMissingView, "layer requires a data view")
	}
	if view.Binding() != store {
		return nil, errors.New(errors.ErrCodeViewMismatch, "view is not bound to the given store")
	}

	return &Layer{
		kind:  kind,
		label: v.label,
		store: store,
		view:  view,

		renderCircles: true,
		lineColor:     "#0000ff",
		lineWidth:     1.0,
		lineStyle:     LineStyleSolid,
		lineAlpha:     1.0,
		capStyle:      CapStyleButt,

		renderPoles:   false,
		poleStyle:     MarkerCircle,
		poleSize:      8.0,
		poleFill:      "#ff7e00",
		poleEdgeColor: "#000000",
		poleEdgeWidth: 1.0,
		poleAlpha:     1.0,

		renderLinears:   true,
		markerStyle:     MarkerCircle,
		markerSize:      8.0,
		markerFill:      "#1283eb",
		markerEdgeColor: "#000000",
		markerEdgeWidth: 1.0,
		markerAlpha:     1.0,

		roseSpacing: 10,
		roseBottom:  0,

		drawHoeppener: false,
		drawLPPlane:   false,

		drawContourFills:    false,
		drawContourLines:    false,
		drawContourLabels:   false,
		renderPoleContours:  false,
		renderLineContours:  true,
		colormap:            "Blues",
		contourResolution:   40,
		contourMethod:       MethodExponentialKamb,
		contourSigma:        2,
		contourLineColor:    "#000000",
		contourUseLineColor: true,
		contourLineWidth:    1,
		contourLineStyle:    LineStyleSolid,
		contourLabelSize:    12,
	}, nil
}

// Kind returns the semantic type of the layer. There is no setter; the
// kind is fixed at construction.
func (l *Layer) Kind() Kind { return l.kind }

// Store returns the data store that holds the feature rows for this layer.
func (l *Layer) Store() Store { return l.store }

// View returns the selection view associated with this layer's store.
func (l *Layer) View() View { return l.view }

// Label returns the display label of the layer. Freshly created layers
// carry a kind-specific default that the user can overwrite.
func (l *Layer) Label() string { return l.label }

// SetLabel sets a new display label.
func (l *Layer) SetLabel(label string) { l.label = label }

// RenderCircles reports whether circle lines are drawn for this layer:
// great circles for plane and faultplane layers, small circles for small
// circle layers.
func (l *Layer) RenderCircles() bool { return l.renderCircles }

// SetRenderCircles sets whether circle lines are drawn.
func (l *Layer) SetRenderCircles(on bool) { l.renderCircles = on }

// LineColor returns the circle line color as a "#RRGGBB" hex triplet.
func (l *Layer) LineColor() string { return l.lineColor }

// SetLineColor sets the circle line color. The string is stored as-is;
// parsing happens lazily in LineRGB.
func (l *Layer) SetLineColor(c string) { l.lineColor = c }

// LineWidth returns the circle line width.
func (l *Layer) LineWidth() float64 { return l.lineWidth }

// SetLineWidth sets the circle line width.
func (l *Layer) SetLineWidth(w float64) { l.lineWidth = w }

// LineStyle returns the circle line dash pattern token (default "-").
func (l *Layer) LineStyle() string { return l.lineStyle }

// SetLineStyle sets the circle line dash pattern token.
func (l *Layer) SetLineStyle(s string) { l.lineStyle = s }

// LineAlpha returns the circle line transparency in [0, 1].
func (l *Layer) LineAlpha() float64 { return l.lineAlpha }

// SetLineAlpha sets the circle line transparency.
func (l *Layer) SetLineAlpha(a float64) { l.lineAlpha = a }

// CapStyle returns the line cap token, used when the line is dashed or
// dash-dotted (default "butt").
func (l *Layer) CapStyle() string { return l.capStyle }

// SetCapStyle sets the line cap token.
func (l *Layer) SetCapStyle(s string) { l.capStyle = s }

// RenderPoles reports whether plane poles are drawn for this layer.
func (l *Layer) RenderPoles() bool { return l.renderPoles }

// SetRenderPoles sets whether plane poles are drawn.
func (l *Layer) SetRenderPoles(on bool) { l.renderPoles = on }

// PoleStyle returns the marker token used for poles (default "o").
func (l *Layer) PoleStyle() string { return l.poleStyle }

// SetPoleStyle sets the marker token used for poles.
func (l *Layer) SetPoleStyle(s string) { l.poleStyle = s }

// PoleSize returns the pole marker size.
func (l *Layer) PoleSize() float64 { return l.poleSize }

// SetPoleSize sets the pole marker size.
func (l *Layer) SetPoleSize(s float64) { l.poleSize = s }

// PoleFill returns the pole fill color as a hex triplet.
func (l *Layer) PoleFill() string { return l.poleFill }

// SetPoleFill sets the pole fill color.
func (l *Layer) SetPoleFill(c string) { l.poleFill = c }

// PoleEdgeColor returns the pole edge color as a hex triplet.
func (l *Layer) PoleEdgeColor() string { return l.poleEdgeColor }

// SetPoleEdgeColor sets the pole edge color.
func (l *Layer) SetPoleEdgeColor(c string) { l.poleEdgeColor = c }

// PoleEdgeWidth returns the pole edge width.
func (l *Layer) PoleEdgeWidth() float64 { return l.poleEdgeWidth }

// SetPoleEdgeWidth sets the pole edge width.
func (l *Layer) SetPoleEdgeWidth(w float64) { l.poleEdgeWidth = w }

// PoleAlpha returns the pole transparency in [0, 1].
func (l *Layer) PoleAlpha() float64 { return l.poleAlpha }

// SetPoleAlpha sets the pole transparency.
func (l *Layer) SetPoleAlpha(a float64) { l.poleAlpha = a }

// RenderLinears reports whether linear markers are drawn for this layer.
func (l *Layer) RenderLinears() bool { return l.renderLinears }

// SetRenderLinears sets whether linear markers are drawn.
func (l *Layer) SetRenderLinears(on bool) { l.renderLinears = on }

// MarkerStyle returns the marker token used for linears (default "o").
func (l *Layer) MarkerStyle() string { return l.markerStyle }

// SetMarkerStyle sets the marker token used for linears.
func (l *Layer) SetMarkerStyle(s string) { l.markerStyle = s }

// MarkerSize returns the linear marker size.
func (l *Layer) MarkerSize() float64 { return l.markerSize }

// SetMarkerSize sets the linear marker size.
func (l *Layer) SetMarkerSize(s float64) { l.markerSize = s }

// MarkerFill returns the linear marker fill color as a hex triplet.
func (l *Layer) MarkerFill() string { return l.markerFill }

// SetMarkerFill sets the linear marker fill color.
func (l *Layer) SetMarkerFill(c string) { l.markerFill = c }

// MarkerEdgeColor returns the linear marker edge color as a hex triplet.
func (l *Layer) MarkerEdgeColor() string { return l.markerEdgeColor }

// SetMarkerEdgeColor sets the linear marker edge color.
func (l *Layer) SetMarkerEdgeColor(c string) { l.markerEdgeColor = c }

// MarkerEdgeWidth returns the linear marker edge width.
func (l *Layer) MarkerEdgeWidth() float64 { return l.markerEdgeWidth }

// SetMarkerEdgeWidth sets the linear marker edge width.
func (l *Layer) SetMarkerEdgeWidth(w float64) { l.markerEdgeWidth = w }

// MarkerAlpha returns the linear marker transparency in [0, 1].
func (l *Layer) MarkerAlpha() float64 { return l.markerAlpha }

// SetMarkerAlpha sets the linear marker transparency.
func (l *Layer) SetMarkerAlpha(a float64) { l.markerAlpha = a }

// RoseSpacing returns the angular bin spacing of the rose diagram in
// degrees (default 10).
func (l *Layer) RoseSpacing() float64 { return l.roseSpacing }

// SetRoseSpacing sets the angular bin spacing of the rose diagram.
func (l *Layer) SetRoseSpacing(s float64) { l.roseSpacing = s }

// RoseBottom returns the radial bottom cutoff of the rose diagram.
func (l *Layer) RoseBottom() float64 { return l.roseBottom }

// SetRoseBottom sets the radial bottom cutoff of the rose diagram.
func (l *Layer) SetRoseBottom(b float64) { l.roseBottom = b }

// DrawHoeppener reports whether Hoeppener slip-sense arrows are drawn.
// The toggle exists on every kind but is only meaningful for faultplane
// layers; the renderer filters by Kind.
func (l *Layer) DrawHoeppener() bool { return l.drawHoeppener }

// SetDrawHoeppener sets whether Hoeppener slip-sense arrows are drawn.
func (l *Layer) SetDrawHoeppener(on bool) { l.drawHoeppener = on }

// DrawLPPlane reports whether the linear-pole auxiliary plane is drawn.
// Like DrawHoeppener, only meaningful for faultplane layers.
func (l *Layer) DrawLPPlane() bool { return l.drawLPPlane }

// SetDrawLPPlane sets whether the linear-pole auxiliary plane is drawn.
func (l *Layer) SetDrawLPPlane(on bool) { l.drawLPPlane = on }

// DrawContourFills reports whether filled contours are drawn.
func (l *Layer) DrawContourFills() bool { return l.drawContourFills }

// SetDrawContourFills sets whether filled contours are drawn.
func (l *Layer) SetDrawContourFills(on bool) { l.drawContourFills = on }

// DrawContourLines reports whether contour lines are drawn.
func (l *Layer) DrawContourLines() bool { return l.drawContourLines }

// SetDrawContourLines sets whether contour lines are drawn.
func (l *Layer) SetDrawContourLines(on bool) { l.drawContourLines = on }

// DrawContourLabels reports whether contour labels are drawn.
func (l *Layer) DrawContourLabels() bool { return l.drawContourLabels }

// SetDrawContourLabels sets whether contour labels are drawn.
func (l *Layer) SetDrawContourLabels(on bool) { l.drawContourLabels = on }

// RenderPoleContours reports whether the plane poles are the contoured
// target. False means the linears are contoured instead.
func (l *Layer) RenderPoleContours() bool { return l.renderPoleContours }

// SetRenderPoleContours sets whether the plane poles are the contoured
// target.
func (l *Layer) SetRenderPoleContours(on bool) { l.renderPoleContours = on }

// RenderLineContours reports whether the linears are the contoured target.
func (l *Layer) RenderLineContours() bool { return l.renderLineContours }

// SetRenderLineContours sets whether the linears are the contoured target.
func (l *Layer) SetRenderLineContours(on bool) { l.renderLineContours = on }

// Colormap returns the colormap name used for contours (default "Blues").
func (l *Layer) Colormap() string { return l.colormap }

// SetColormap sets the colormap name used for contours.
func (l *Layer) SetColormap(name string) { l.colormap = name }

// ContourResolution returns the contour grid density (default 40).
func (l *Layer) ContourResolution() int { return l.contourResolution }

// SetContourResolution sets the contour grid density.
func (l *Layer) SetContourResolution(n int) { l.contourResolution = n }

// ContourMethod returns the density estimation method token (default
// "exponential_kamb").
func (l *Layer) ContourMethod() string { return l.contourMethod }

// SetContourMethod sets the density estimation method token.
func (l *Layer) SetContourMethod(m string) { l.contourMethod = m }

// ContourSigma returns the statistical smoothing parameter (default 2).
func (l *Layer) ContourSigma() float64 { return l.contourSigma }

// SetContourSigma sets the statistical smoothing parameter.
func (l *Layer) SetContourSigma(s float64) { l.contourSigma = s }

// ContourLineColor returns the contour line color as a hex triplet.
func (l *Layer) ContourLineColor() string { return l.contourLineColor }

// SetContourLineColor sets the contour line color.
func (l *Layer) SetContourLineColor(c string) { l.contourLineColor = c }

// ContourUseLineColor reports whether contour lines use the flat line
// color (true) or the colormap (false).
func (l *Layer) ContourUseLineColor() bool { return l.contourUseLineColor }

// SetContourUseLineColor sets whether contour lines use the flat line
// color instead of the colormap.
func (l *Layer) SetContourUseLineColor(on bool) { l.contourUseLineColor = on }

// ContourLineWidth returns the contour line width (default 1).
func (l *Layer) ContourLineWidth() float64 { return l.contourLineWidth }

// SetContourLineWidth sets the contour line width.
func (l *Layer) SetContourLineWidth(w float64) { l.contourLineWidth = w }

// ContourLineStyle returns the contour line dash pattern token.
func (l *Layer) ContourLineStyle() string { return l.contourLineStyle }

// SetContourLineStyle sets the contour line dash pattern token.
func (l *Layer) SetContourLineStyle(s string) { l.contourLineStyle = s }

// ContourLabelSize returns the contour label font size (default 12).
func (l *Layer) ContourLabelSize() float64 { return l.contourLabelSize }

// SetContourLabelSize sets the contour label font size.
func (l *Layer) SetContourLabelSize(s float64) { l.contourLabelSize = s }
