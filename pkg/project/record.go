package project

import (
	"github.com/akositz/innstereo/pkg/dataset"
)

// Record is the serialized form of one layer entry, shared by the JSON
// project format and the TOML manifest format.
//
// Styling fields are pointers so that a key missing from the input leaves
// the kind's construction default untouched. The writer side always fills
// every field, which keeps saved project files self-contained.
type Record struct {
	ID    string  `json:"id,omitempty" toml:"id,omitempty"`
	Kind  string  `json:"kind" toml:"kind"`
	Label *string `json:"label,omitempty" toml:"label,omitempty"`

	RenderCircles *bool    `json:"render_circles,omitempty" toml:"render_circles,omitempty"`
	LineColor     *string  `json:"line_color,omitempty" toml:"line_color,omitempty"`
	LineWidth     *float64 `json:"line_width,omitempty" toml:"line_width,omitempty"`
	LineStyle     *string  `json:"line_style,omitempty" toml:"line_style,omitempty"`
	LineAlpha     *float64 `json:"line_alpha,omitempty" toml:"line_alpha,omitempty"`
	CapStyle      *string  `json:"cap_style,omitempty" toml:"cap_style,omitempty"`

	RenderPoles   *bool    `json:"render_poles,omitempty" toml:"render_poles,omitempty"`
	PoleStyle     *string  `json:"pole_style,omitempty" toml:"pole_style,omitempty"`
	PoleSize      *float64 `json:"pole_size,omitempty" toml:"pole_size,omitempty"`
	PoleFill      *string  `json:"pole_fill,omitempty" toml:"pole_fill,omitempty"`
	PoleEdgeColor *string  `json:"pole_edge_color,omitempty" toml:"pole_edge_color,omitempty"`
	PoleEdgeWidth *float64 `json:"pole_edge_width,omitempty" toml:"pole_edge_width,omitempty"`
	PoleAlpha     *float64 `json:"pole_alpha,omitempty" toml:"pole_alpha,omitempty"`

	RenderLinears   *bool    `json:"render_linears,omitempty" toml:"render_linears,omitempty"`
	MarkerStyle     *string  `json:"marker_style,omitempty" toml:"marker_style,omitempty"`
	MarkerSize      *float64 `json:"marker_size,omitempty" toml:"marker_size,omitempty"`
	MarkerFill      *string  `json:"marker_fill,omitempty" toml:"marker_fill,omitempty"`
	MarkerEdgeColor *string  `json:"marker_edge_color,omitempty" toml:"marker_edge_color,omitempty"`
	MarkerEdgeWidth *float64 `json:"marker_edge_width,omitempty" toml:"marker_edge_width,omitempty"`
	MarkerAlpha     *float64 `json:"marker_alpha,omitempty" toml:"marker_alpha,omitempty"`

	RoseSpacing *float64 `json:"rose_spacing,omitempty" toml:"rose_spacing,omitempty"`
	RoseBottom  *float64 `json:"rose_bottom,omitempty" toml:"rose_bottom,omitempty"`

	DrawHoeppener *bool `json:"draw_hoeppener,omitempty" toml:"draw_hoeppener,omitempty"`
	DrawLPPlane   *bool `json:"draw_lp_plane,omitempty" toml:"draw_lp_plane,omitempty"`

	DrawContourFills    *bool    `json:"draw_contour_fills,omitempty" toml:"draw_contour_fills,omitempty"`
	DrawContourLines    *bool    `json:"draw_contour_lines,omitempty" toml:"draw_contour_lines,omitempty"`
	DrawContourLabels   *bool    `json:"draw_contour_labels,omitempty" toml:"draw_contour_labels,omitempty"`
	RenderPoleContours  *bool    `json:"render_pole_contours,omitempty" toml:"render_pole_contours,omitempty"`
	RenderLineContours  *bool    `json:"render_line_contours,omitempty" toml:"render_line_contours,omitempty"`
	Colormap            *string  `json:"colormap,omitempty" toml:"colormap,omitempty"`
	ContourResolution   *int     `json:"contour_resolution,omitempty" toml:"contour_resolution,omitempty"`
	ContourMethod       *string  `json:"contour_method,omitempty" toml:"contour_method,omitempty"`
	ContourSigma        *float64 `json:"contour_sigma,omitempty" toml:"contour_sigma,omitempty"`
	ContourLineColor    *string  `json:"contour_line_color,omitempty" toml:"contour_line_color,omitempty"`
	ContourUseLineColor *bool    `json:"contour_use_line_color,omitempty" toml:"contour_use_line_color,omitempty"`
	ContourLineWidth    *float64 `json:"contour_line_width,omitempty" toml:"contour_line_width,omitempty"`
	ContourLineStyle    *string  `json:"contour_line_style,omitempty" toml:"contour_line_style,omitempty"`
	ContourLabelSize    *float64 `json:"contour_label_size,omitempty" toml:"contour_label_size,omitempty"`

	Rows []dataset.Row `json:"rows,omitempty" toml:"rows,omitempty"`
}

func strp(s string) *string    { return &s }
func boolp(b bool) *bool       { return &b }
func floatp(f float64) *float64 { return &f }
func intp(n int) *int          { return &n }

// snapshot captures every attribute of an entry into a Record.
func snapshot(e *Entry) Record {
	l := e.Layer
	return Record{
		ID:    e.ID,
		Kind:  l.Kind().String(),
		Label: strp(l.Label()),

		RenderCircles: boolp(l.RenderCircles()),
		LineColor:     strp(l.LineColor()),
		LineWidth:     floatp(l.LineWidth()),
		LineStyle:     strp(l.LineStyle()),
		LineAlpha:     floatp(l.LineAlpha()),
		CapStyle:      strp(l.CapStyle()),

		RenderPoles:   boolp(l.RenderPoles()),
		PoleStyle:     strp(l.PoleStyle()),
		PoleSize:      floatp(l.PoleSize()),
		PoleFill:      strp(l.PoleFill()),
		PoleEdgeColor: strp(l.PoleEdgeColor()),
		PoleEdgeWidth: floatp(l.PoleEdgeWidth()),
		PoleAlpha:     floatp(l.PoleAlpha()),

		RenderLinears:   boolp(l.RenderLinears()),
		MarkerStyle:     strp(l.MarkerStyle()),
		MarkerSize:      floatp(l.MarkerSize()),
		MarkerFill:      strp(l.MarkerFill()),
		MarkerEdgeColor: strp(l.MarkerEdgeColor()),
		MarkerEdgeWidth: floatp(l.MarkerEdgeWidth()),
		MarkerAlpha:     floatp(l.MarkerAlpha()),

		RoseSpacing: floatp(l.RoseSpacing()),
		RoseBottom:  floatp(l.RoseBottom()),

		DrawHoeppener: boolp(l.DrawHoeppener()),
		DrawLPPlane:   boolp(l.DrawLPPlane()),

		DrawContourFills:    boolp(l.DrawContourFills()),
		DrawContourLines:    boolp(l.DrawContourLines()),
		DrawContourLabels:   boolp(l.DrawContourLabels()),
		RenderPoleContours:  boolp(l.RenderPoleContours()),
		RenderLineContours:  boolp(l.RenderLineContours()),
		Colormap:            strp(l.Colormap()),
		ContourResolution:   intp(l.ContourResolution()),
		ContourMethod:       strp(l.ContourMethod()),
		ContourSigma:        floatp(l.ContourSigma()),
		ContourLineColor:    strp(l.ContourLineColor()),
		ContourUseLineColor: boolp(l.ContourUseLineColor()),
		ContourLineWidth:    floatp(l.ContourLineWidth()),
		ContourLineStyle:    strp(l.ContourLineStyle()),
		ContourLabelSize:    floatp(l.ContourLabelSize()),

		Rows: e.Store.Rows(),
	}
}

// apply overwrites an entry's attributes with the record's non-nil fields
// and appends the record's rows to the entry's store. Fields left nil keep
// the construction defaults.
func apply(rec Record, e *Entry) {
	l := e.Layer

	if rec.Label != nil {
		l.SetLabel(*rec.Label)
	}

	if rec.RenderCircles != nil {
		l.SetRenderCircles(*rec.RenderCircles)
	}
	if rec.LineColor != nil {
		l.SetLineColor(*rec.LineColor)
	}
	if rec.LineWidth != nil {
		l.SetLineWidth(*rec.LineWidth)
	}
	if rec.LineStyle != nil {
		l.SetLineStyle(*rec.LineStyle)
	}
	if rec.LineAlpha != nil {
		l.SetLineAlpha(*rec.LineAlpha)
	}
	if rec.CapStyle != nil {
		l.SetCapStyle(*rec.CapStyle)
	}

	if rec.RenderPoles != nil {
		l.SetRenderPoles(*rec.RenderPoles)
	}
	if rec.PoleStyle != nil {
		l.SetPoleStyle(*rec.PoleStyle)
	}
	if rec.PoleSize != nil {
		l.SetPoleSize(*rec.PoleSize)
	}
	if rec.PoleFill != nil {
		l.SetPoleFill(*rec.PoleFill)
	}
	if rec.PoleEdgeColor != nil {
		l.SetPoleEdgeColor(*rec.PoleEdgeColor)
	}
	if rec.PoleEdgeWidth != nil {
		l.SetPoleEdgeWidth(*rec.PoleEdgeWidth)
	}
	if rec.PoleAlpha != nil {
		l.SetPoleAlpha(*rec.PoleAlpha)
	}

	if rec.RenderLinears != nil {
		l.SetRenderLinears(*rec.RenderLinears)
	}
	if rec.MarkerStyle != nil {
		l.SetMarkerStyle(*rec.MarkerStyle)
	}
	if rec.MarkerSize != nil {
		l.SetMarkerSize(*rec.MarkerSize)
	}
	if rec.MarkerFill != nil {
		l.SetMarkerFill(*rec.MarkerFill)
	}
	if rec.MarkerEdgeColor != nil {
		l.SetMarkerEdgeColor(*rec.MarkerEdgeColor)
	}
	if rec.MarkerEdgeWidth != nil {
		l.SetMarkerEdgeWidth(*rec.MarkerEdgeWidth)
	}
	if rec.MarkerAlpha != nil {
		l.SetMarkerAlpha(*rec.MarkerAlpha)
	}

	if rec.RoseSpacing != nil {
		l.SetRoseSpacing(*rec.RoseSpacing)
	}
	if rec.RoseBottom != nil {
		l.SetRoseBottom(*rec.RoseBottom)
	}

	if rec.DrawHoeppener != nil {
		l.SetDrawHoeppener(*rec.DrawHoeppener)
	}
	if rec.DrawLPPlane != nil {
		l.SetDrawLPPlane(*rec.DrawLPPlane)
	}

	if rec.DrawContourFills != nil {
		l.SetDrawContourFills(*rec.DrawContourFills)
	}
	if rec.DrawContourLines != nil {
		l.SetDrawContourLines(*rec.DrawContourLines)
	}
	if rec.DrawContourLabels != nil {
		l.SetDrawContourLabels(*rec.DrawContourLabels)
	}
	if rec.RenderPoleContours != nil {
		l.SetRenderPoleContours(*rec.RenderPoleContours)
	}
	if rec.RenderLineContours != nil {
		l.SetRenderLineContours(*rec.RenderLineContours)
	}
	if rec.Colormap != nil {
		l.SetColormap(*rec.Colormap)
	}
	if rec.ContourResolution != nil {
		l.SetContourResolution(*rec.ContourResolution)
	}
	if rec.ContourMethod != nil {
		l.SetContourMethod(*rec.ContourMethod)
	}
	if rec.ContourSigma != nil {
		l.SetContourSigma(*rec.ContourSigma)
	}
	if rec.ContourLineColor != nil {
		l.SetContourLineColor(*rec.ContourLineColor)
	}
	if rec.ContourUseLineColor != nil {
		l.SetContourUseLineColor(*rec.ContourUseLineColor)
	}
	if rec.ContourLineWidth != nil {
		l.SetContourLineWidth(*rec.ContourLineWidth)
	}
	if rec.ContourLineStyle != nil {
		l.SetContourLineStyle(*rec.ContourLineStyle)
	}
	if rec.ContourLabelSize != nil {
		l.SetContourLabelSize(*rec.ContourLabelSize)
	}

	for _, row := range rec.Rows {
		e.Store.Append(row)
	}
}
