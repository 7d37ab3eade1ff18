package layer

// Line style tokens. These follow the dash-pattern conventions the
// plotting routine understands.
const (
	LineStyleSolid   = "-"
	LineStyleDashed  = "--"
	LineStyleDashDot = "-."
	LineStyleDotted  = ":"
)

// Cap style tokens for dashed and dash-dotted lines.
const (
	CapStyleButt       = "butt"
	CapStyleRound      = "round"
	CapStyleProjecting = "projecting"
)

// Marker style tokens for poles and linears.
const (
	MarkerCircle   = "o"
	MarkerSquare   = "s"
	MarkerTriangle = "^"
	MarkerDiamond  = "D"
	MarkerCross    = "x"
	MarkerPlus     = "+"
)

// Contour estimation method tokens.
const (
	MethodExponentialKamb = "exponential_kamb"
	MethodLinearKamb      = "linear_kamb"
	MethodKamb            = "kamb"
	MethodSchmidt         = "schmidt"
)
