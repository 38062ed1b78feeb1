package libhex

import (
	"github.com/fine-structures/honeycomb/gohex"
	"github.com/pkg/errors"
)

func add(a, b gohex.Point) gohex.Point {
	return gohex.Point{X: a.X + b.X, Y: a.Y + b.Y}
}

func scale(c float64, v gohex.Point) gohex.Point {
	return gohex.Point{X: float64(c * v.X), Y: float64(c * v.Y)}
}

// BondPolygon returns the mitered hexagon joining v1 and v2.
//
// The long edges run parallel to v1→v2 at ±Thickness. Each tip sits Gap along the bond from its
// endpoint and the shoulders sit a further MiterDepth in, so the outline is mirror-symmetric about the
// bond axis.
func BondPolygon(st *gohex.Style, v1, v2 gohex.Point) (gohex.Polygon, error) {
	length := Dist(v1, v2)
	if length == 0 {
		return gohex.Polygon{}, errors.Wrapf(gohex.ErrCoincidentPoints, "at (%v,%v)", v1.X, v1.Y)
	}

	unit := gohex.Point{X: (v2.X - v1.X) / length, Y: (v2.Y - v1.Y) / length}
	perp := gohex.Point{X: -unit.Y, Y: unit.X}

	gap := st.Gap
	miter := gap + st.MiterDepth
	thick := st.Thickness

	near := add(v1, scale(miter, unit))
	far := add(v2, scale(-miter, unit))

	return gohex.Polygon{
		Points: []gohex.Point{
			add(v1, scale(gap, unit)),
			add(near, scale(thick, perp)),
			add(far, scale(thick, perp)),
			add(v2, scale(-gap, unit)),
			add(far, scale(-thick, perp)),
			add(near, scale(-thick, perp)),
		},
		Style: st.BondStyle,
	}, nil
}
