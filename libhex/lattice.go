package libhex

import (
	"math"

	"github.com/fine-structures/honeycomb/gohex"
)

// Products are wrapped in float64() so the compiler cannot fuse them into the following add.
// Output must be bit-identical on every GOARCH.

// SitePoint maps a lattice site to its position in image space.
//
// Even rows start half a spacing left of center; odd rows are shifted right by 1.5 spacings.
// Within a row, even columns are pulled left by half a spacing.
func SitePoint(st *gohex.Style, site gohex.Site) gohex.Point {
	spacing := st.InterCarbon
	col := float64(site.Col)

	var shift float64
	if site.Col%2 == 0 {
		shift = -spacing / 2
	}

	step := float64(spacing * 3 / 2 * col)

	var x float64
	if site.Row%2 == 0 {
		x = st.Center.X - step + shift
	} else {
		x = st.Center.X + 3*spacing/2 - step + shift
	}

	y := st.Center.Y + float64(spacing*math.Sqrt(3)/2*float64(site.Row))

	return gohex.Point{X: x, Y: y}
}

// LatticePoints maps each site to its point, preserving order.
func LatticePoints(st *gohex.Style, sites []gohex.Site) []gohex.Point {
	pts := make([]gohex.Point, len(sites))
	for i, site := range sites {
		pts[i] = SitePoint(st, site)
	}
	return pts
}
