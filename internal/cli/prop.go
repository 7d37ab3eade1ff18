package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
	"github.com/akositz/innstereo/pkg/project"
)

// property binds a CLI-facing property name to a layer accessor pair.
//
// The set functions own the type and range checking the layer model
// deliberately does not do: the model's setters accept anything, and this
// table is the boundary where user input is validated, the same way the
// bounded widgets of a properties dialog would.
type property struct {
	name string
	get  func(*layer.Layer) string
	set  func(*layer.Layer, string) error
}

// formatFloat renders a float without trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// setString builds a setter for free-form string properties.
func setString(f func(*layer.Layer, string)) func(*layer.Layer, string) error {
	return func(l *layer.Layer, v string) error {
		f(l, v)
		return nil
	}
}

// setColor builds a setter that validates a "#RRGGBB" triplet before
// storing it. The model would accept anything; the CLI does not.
func setColor(f func(*layer.Layer, string)) func(*layer.Layer, string) error {
	return func(l *layer.Layer, v string) error {
		if err := errors.ValidateHexTriplet(v); err != nil {
			return err
		}
		f(l, v)
		return nil
	}
}

// setFloat builds a setter for numeric properties.
func setFloat(f func(*layer.Layer, float64)) func(*layer.Layer, string) error {
	return func(l *layer.Layer, v string) error {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidValue, "not a number: %q", v)
		}
		f(l, x)
		return nil
	}
}

// setInt builds a setter for integer properties.
func setInt(f func(*layer.Layer, int)) func(*layer.Layer, string) error {
	return func(l *layer.Layer, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidValue, "not an integer: %q", v)
		}
		f(l, n)
		return nil
	}
}

// setBool builds a setter for toggle properties.
func setBool(f func(*layer.Layer, bool)) func(*layer.Layer, string) error {
	return func(l *layer.Layer, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidValue, "not a boolean: %q", v)
		}
		f(l, b)
		return nil
	}
}

// properties lists every writable styling property in display order. The
// names match the keys of the project file format.
var properties = []property{
	{"label", (*layer.Layer).Label, setString((*layer.Layer).SetLabel)},

	{"render_circles", func(l *layer.Layer) string { return strconv.FormatBool(l.RenderCircles()) }, setBool((*layer.Layer).SetRenderCircles)},
	{"line_color", (*layer.Layer).LineColor, setColor((*layer.Layer).SetLineColor)},
	{"line_width", func(l *layer.Layer) string { return formatFloat(l.LineWidth()) }, setFloat((*layer.Layer).SetLineWidth)},
	{"line_style", (*layer.Layer).LineStyle, setString((*layer.Layer).SetLineStyle)},
	{"line_alpha", func(l *layer.Layer) string { return formatFloat(l.LineAlpha()) }, setFloat((*layer.Layer).SetLineAlpha)},
	{"cap_style", (*layer.Layer).CapStyle, setString((*layer.Layer).SetCapStyle)},

	{"render_poles", func(l *layer.Layer) string { return strconv.FormatBool(l.RenderPoles()) }, setBool((*layer.Layer).SetRenderPoles)},
	{"pole_style", (*layer.Layer).PoleStyle, setString((*layer.Layer).SetPoleStyle)},
	{"pole_size", func(l *layer.Layer) string { return formatFloat(l.PoleSize()) }, setFloat((*layer.Layer).SetPoleSize)},
	{"pole_fill", (*layer.Layer).PoleFill, setColor((*layer.Layer).SetPoleFill)},
	{"pole_edge_color", (*layer.Layer).PoleEdgeColor, setColor((*layer.Layer).SetPoleEdgeColor)},
	{"pole_edge_width", func(l *layer.Layer) string { return formatFloat(l.PoleEdgeWidth()) }, setFloat((*layer.Layer).SetPoleEdgeWidth)},
	{"pole_alpha", func(l *layer.Layer) string { return formatFloat(l.PoleAlpha()) }, setFloat((*layer.Layer).SetPoleAlpha)},

	{"render_linears", func(l *layer.Layer) string { return strconv.FormatBool(l.RenderLinears()) }, setBool((*layer.Layer).SetRenderLinears)},
	{"marker_style", (*layer.Layer).MarkerStyle, setString((*layer.Layer).SetMarkerStyle)},
	{"marker_size", func(l *layer.Layer) string { return formatFloat(l.MarkerSize()) }, setFloat((*layer.Layer).SetMarkerSize)},
	{"marker_fill", (*layer.Layer).MarkerFill, setColor((*layer.Layer).SetMarkerFill)},
	{"marker_edge_color", (*layer.Layer).MarkerEdgeColor, setColor((*layer.Layer).SetMarkerEdgeColor)},
	{"marker_edge_width", func(l *layer.Layer) string { return formatFloat(l.MarkerEdgeWidth()) }, setFloat((*layer.Layer).SetMarkerEdgeWidth)},
	{"marker_alpha", func(l *layer.Layer) string { return formatFloat(l.MarkerAlpha()) }, setFloat((*layer.Layer).SetMarkerAlpha)},

	{"rose_spacing", func(l *layer.Layer) string { return formatFloat(l.RoseSpacing()) }, setFloat((*layer.Layer).SetRoseSpacing)},
	{"rose_bottom", func(l *layer.Layer) string { return formatFloat(l.RoseBottom()) }, setFloat((*layer.Layer).SetRoseBottom)},

	{"draw_hoeppener", func(l *layer.Layer) string { return strconv.FormatBool(l.DrawHoeppener()) }, setBool((*layer.Layer).SetDrawHoeppener)},
	{"draw_lp_plane", func(l *layer.Layer) string { return strconv.FormatBool(l.DrawLPPlane()) }, setBool((*layer.Layer).SetDrawLPPlane)},

	{"draw_contour_fills", func(l *layer.Layer) string { return strconv.FormatBool(l.DrawContourFills()) }, setBool((*layer.Layer).SetDrawContourFills)},
	{"draw_contour_lines", func(l *layer.Layer) string { return strconv.FormatBool(l.DrawContourLines()) }, setBool((*layer.Layer).SetDrawContourLines)},
	{"draw_contour_labels", func(l *layer.Layer) string { return strconv.FormatBool(l.DrawContourLabels()) }, setBool((*layer.Layer).SetDrawContourLabels)},
	{"render_pole_contours", func(l *layer.Layer) string { return strconv.FormatBool(l.RenderPoleContours()) }, setBool((*layer.Layer).SetRenderPoleContours)},
	{"render_line_contours", func(l *layer.Layer) string { return strconv.FormatBool(l.RenderLineContours()) }, setBool((*layer.Layer).SetRenderLineContours)},
	{"colormap", (*layer.Layer).Colormap, setString((*layer.Layer).SetColormap)},
	{"contour_resolution", func(l *layer.Layer) string { return strconv.Itoa(l.ContourResolution()) }, setInt((*layer.Layer).SetContourResolution)},
	{"contour_method", (*layer.Layer).ContourMethod, setString((*layer.Layer).SetContourMethod)},
	{"contour_sigma", func(l *layer.Layer) string { return formatFloat(l.ContourSigma()) }, setFloat((*layer.Layer).SetContourSigma)},
	{"contour_line_color", (*layer.Layer).ContourLineColor, setColor((*layer.Layer).SetContourLineColor)},
	{"contour_use_line_color", func(l *layer.Layer) string { return strconv.FormatBool(l.ContourUseLineColor()) }, setBool((*layer.Layer).SetContourUseLineColor)},
	{"contour_line_width", func(l *layer.Layer) string { return formatFloat(l.ContourLineWidth()) }, setFloat((*layer.Layer).SetContourLineWidth)},
	{"contour_line_style", (*layer.Layer).ContourLineStyle, setString((*layer.Layer).SetContourLineStyle)},
	{"contour_label_size", func(l *layer.Layer) string { return formatFloat(l.ContourLabelSize()) }, setFloat((*layer.Layer).SetContourLabelSize)},
}

// lookupProperty finds a property by name.
func lookupProperty(name string) (property, error) {
	for _, p := range properties {
		if p.name == name {
			return p, nil
		}
	}
	return property{}, errors.New(errors.ErrCodePropertyNotFound, "unknown property: %q (see 'layer show' for the full list)", name)
}

// newPropCmd creates the prop command group for reading and writing layer
// styling properties.
func newPropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prop",
		Short: "Read and write layer styling properties",
	}

	cmd.AddCommand(newPropGetCmd())
	cmd.AddCommand(newPropSetCmd())

	return cmd
}

// newPropGetCmd creates the command that prints one property of a layer.
func newPropGetCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "get <layer> <property>",
		Short: "Print a styling property of a layer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(path)
			if err != nil {
				return err
			}

			e, err := p.Resolve(args[0])
			if err != nil {
				return err
			}
			prop, err := lookupProperty(args[1])
			if err != nil {
				return err
			}

			fmt.Println(prop.get(e.Layer))
			return nil
		},
	}

	addProjectFlag(cmd, &path)

	return cmd
}

// newPropSetCmd creates the command that updates one property of a layer
// and saves the project.
func newPropSetCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "set <layer> <property> <value>",
		Short: "Set a styling property of a layer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := loadProject(path)
			if err != nil {
				return err
			}

			e, err := p.Resolve(args[0])
			if err != nil {
				return err
			}
			prop, err := lookupProperty(args[1])
			if err != nil {
				return err
			}

			if err := prop.set(e.Layer, args[2]); err != nil {
				return err
			}
			if err := project.Save(p, path); err != nil {
				return err
			}

			logger.Debugf("Set %s=%s on layer %s", prop.name, args[2], e.ID)
			printSuccess("%s: %s = %s", e.Layer.Label(), prop.name, prop.get(e.Layer))
			return nil
		},
	}

	addProjectFlag(cmd, &path)

	return cmd
}
