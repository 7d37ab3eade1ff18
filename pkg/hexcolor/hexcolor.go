// Package hexcolor converts between "#RRGGBB" hex triplet strings and
// structured color values.
//
// The layer model stores all colors as hex triplet strings and keeps
// transparency in separate alpha attributes. This package is the single
// point where those strings are parsed into channel values, so no toolkit
// color type ever leaks into the model.
//
// Parsing is strict: exactly six hex digits behind a leading "#". Shorthand
// forms and embedded alpha channels are rejected.
package hexcolor

import (
	"image/color"
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/akositz/innstereo/pkg/errors"
)

// tripletRegex matches a strict "#RRGGBB" hex triplet.
var tripletRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// RGB is a parsed hex triplet with 8-bit channels.
//
// There is deliberately no alpha channel here: layer transparency is a
// separate float attribute and is never encoded in the color string.
type RGB struct {
	R, G, B uint8
}

// Parse converts a "#RRGGBB" string into an RGB value.
// It returns an error with code INVALID_COLOR for anything that is not a
// strict six-digit hex triplet.
func Parse(s string) (RGB, error) {
	if !tripletRegex.MatchString(s) {
		return RGB{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex triplet: %q (expected #RRGGBB)", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the "#rrggbb" string form of the color.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// NRGBA returns the color as a stdlib color.NRGBA with the given alpha byte.
// Callers that need full opacity pass 0xff.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
