package libhex

import (
	"math"

	"github.com/fine-structures/honeycomb/gohex"
)

// Dist returns the Euclidean distance between a and b.
func Dist(a, b gohex.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(float64(dx*dx) + float64(dy*dy))
}

// AdjacentPairs returns every pair (i, j), i < j, of pts closer than threshold.
//
// Pairs are ordered by i then j.
func AdjacentPairs(pts []gohex.Point, threshold float64) []gohex.Bond {
	var bonds []gohex.Bond
	for i := 0; i < len(pts)-1; i++ {
		for j := i + 1; j < len(pts); j++ {
			if Dist(pts[i], pts[j]) < threshold {
				bonds = append(bonds, gohex.Bond{
					I: i,
					J: j,
					A: pts[i],
					B: pts[j],
				})
			}
		}
	}
	return bonds
}
