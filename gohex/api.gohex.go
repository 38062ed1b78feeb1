package gohex

import (
	"math"

	"github.com/pkg/errors"
)

const (

	// DefaultInterCarbon is the lattice spacing between neighboring sites.
	DefaultInterCarbon = 30

	// AdjacencySlack is added to InterCarbon to form the neighbor distance cutoff.
	AdjacencySlack = 1

	PresetSimplified = "simplified"
	PresetDetailed   = "detailed"
)

// Point is a position in image space.
type Point struct {
	X, Y float64
}

// Site is a hexagonal lattice index (column, row).
type Site struct {
	Col int
	Row int
}

// LogoSites are the lattice sites that make up the honeycomb logo, in emission order.
var LogoSites = []Site{
	{1, -3},
	{0, -2},
	{1, -2},
	{1, -1},
	{2, -1},
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 2},
	{1, 2},
}

// Bond joins the points at indexes I and J (I < J) of a generated point list.
type Bond struct {
	I, J int
	A, B Point
}

// Style holds every drawing constant used by a render pass.
//
// A Style is built once (see PresetStyle) and is never modified during a render.
type Style struct {
	Center       Point
	InterCarbon  float64 // lattice spacing
	Thickness    float64 // half-width of a bond polygon
	Gap          float64 // distance from a lattice point to a bond tip; negative overlaps the point
	MiterDepth   float64
	DrawVertices bool

	BondStyle         string
	VertexStroke      string
	VertexStrokeWidth float64
	VertexFill        string
	VertexRadius      float64
	AccentRadius      float64
}

// AdjacencyThreshold returns the distance below which two lattice points are bonded.
func (st *Style) AdjacencyThreshold() float64 {
	return st.InterCarbon + AdjacencySlack
}

// Validate checks that st describes a drawable style.
func (st *Style) Validate() error {
	nums := []struct {
		name string
		val  float64
	}{
		{"center.x", st.Center.X},
		{"center.y", st.Center.Y},
		{"inter_carbon", st.InterCarbon},
		{"thickness", st.Thickness},
		{"gap", st.Gap},
		{"miter_depth", st.MiterDepth},
		{"vertex_stroke_width", st.VertexStrokeWidth},
		{"vertex_radius", st.VertexRadius},
		{"accent_radius", st.AccentRadius},
	}
	for _, n := range nums {
		if math.IsNaN(n.val) || math.IsInf(n.val, 0) {
			return errors.Wrapf(ErrBadStyle, "%s is not finite", n.name)
		}
	}

	switch {
	case st.InterCarbon <= 0:
		return errors.Wrap(ErrBadStyle, "inter_carbon must be > 0")
	case st.Thickness < 0:
		return errors.Wrap(ErrBadStyle, "thickness must be >= 0")
	case st.DrawVertices && (st.VertexRadius <= 0 || st.AccentRadius <= 0):
		return errors.Wrap(ErrBadStyle, "vertex radii must be > 0")
	}
	return nil
}

func baseStyle() Style {
	return Style{
		Center:            Point{100, 100},
		InterCarbon:       DefaultInterCarbon,
		BondStyle:         "fill:#09c;",
		VertexStroke:      "gray",
		VertexStrokeWidth: 2.6,
		VertexFill:        "white",
		VertexRadius:      6,
		AccentRadius:      8.5,
	}
}

// SimplifiedStyle returns the preset with wide, overlapping bonds and no vertex circles.
func SimplifiedStyle() Style {
	st := baseStyle()
	st.Thickness = 7
	st.Gap = -st.Thickness * math.Sqrt(3) / 2
	st.MiterDepth = st.Thickness / 2
	return st
}

// DetailedStyle returns the preset with thin bonds and a circle at every vertex.
func DetailedStyle() Style {
	st := baseStyle()
	st.Thickness = 4
	st.Gap = 2
	st.MiterDepth = 3
	st.DrawVertices = true
	return st
}

// PresetNames lists the names accepted by PresetStyle.
var PresetNames = []string{PresetSimplified, PresetDetailed}

// PresetStyle returns the named preset.
func PresetStyle(name string) (Style, error) {
	switch name {
	case PresetSimplified, "":
		return SimplifiedStyle(), nil
	case PresetDetailed:
		return DetailedStyle(), nil
	}
	return Style{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
}

// Shape is a drawable element of a render.
type Shape interface {

	// AppendSVG appends this shape as a single SVG element (no trailing newline).
	AppendSVG(dst []byte) []byte

	// Bounds returns the axis-aligned box covering this shape.
	Bounds() (min, max Point)
}

// ShapeSink receives shapes in emission order.
type ShapeSink interface {
	AddShape(s Shape) error
}

// Polygon is a closed, filled outline.
type Polygon struct {
	Points []Point
	Style  string
}

// Circle is a stroked, filled circle.
type Circle struct {
	Center      Point
	Radius      float64
	Stroke      string
	StrokeWidth float64
	Fill        string
}
