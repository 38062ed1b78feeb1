package libhex

import (
	"github.com/fine-structures/honeycomb/gohex"
)

// VertexRadius returns the circle radius for the call'th vertex drawn in a pass (one-based).
//
// Only the second vertex is accented.
func VertexRadius(st *gohex.Style, call int) float64 {
	if call > 2 || call == 1 {
		return st.VertexRadius
	}
	return st.AccentRadius
}

// VertexCircle returns the circle drawn at pt as the call'th vertex of a pass.
func VertexCircle(st *gohex.Style, pt gohex.Point, call int) gohex.Circle {
	return gohex.Circle{
		Center:      pt,
		Radius:      VertexRadius(st, call),
		Stroke:      st.VertexStroke,
		StrokeWidth: st.VertexStrokeWidth,
		Fill:        st.VertexFill,
	}
}
