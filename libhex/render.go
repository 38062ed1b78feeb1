package libhex

import (
	"github.com/fine-structures/honeycomb/gohex"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Drawing is the result of a render pass.
type Drawing struct {
	Points []gohex.Point
	Bonds  []gohex.Bond
	Shapes []gohex.Shape
}

// AddShape appends s, making a Drawing usable as a gohex.ShapeSink.
func (dr *Drawing) AddShape(s gohex.Shape) error {
	dr.Shapes = append(dr.Shapes, s)
	return nil
}

// NumCircles returns how many vertex circles were drawn.
func (dr *Drawing) NumCircles() int {
	n := 0
	for _, s := range dr.Shapes {
		if _, isCircle := s.(*gohex.Circle); isCircle {
			n++
		}
	}
	return n
}

// Render runs a full pass over sites and collects the result.
func Render(st *gohex.Style, sites []gohex.Site) (*Drawing, error) {
	dr := &Drawing{}
	pts, bonds, err := RenderTo(st, sites, dr)
	if err != nil {
		return nil, err
	}
	dr.Points = pts
	dr.Bonds = bonds
	return dr, nil
}

// RenderTo runs a full pass over sites, handing each shape to sink as it is produced.
//
// Every bond polygon is emitted first in adjacency order, followed by one circle per site (in site order)
// if st.DrawVertices is set.
func RenderTo(st *gohex.Style, sites []gohex.Site, sink gohex.ShapeSink) ([]gohex.Point, []gohex.Bond, error) {
	if err := st.Validate(); err != nil {
		return nil, nil, err
	}
	if err := ValidateSites(sites); err != nil {
		return nil, nil, err
	}

	pts := LatticePoints(st, sites)
	bonds := AdjacentPairs(pts, st.AdjacencyThreshold())

	for _, bond := range bonds {
		poly, err := BondPolygon(st, bond.A, bond.B)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "bond %d-%d", bond.I, bond.J)
		}
		if err = sink.AddShape(&poly); err != nil {
			return nil, nil, err
		}
	}

	if st.DrawVertices {
		for i, pt := range pts {
			circle := VertexCircle(st, pt, i+1)
			if err := sink.AddShape(&circle); err != nil {
				return nil, nil, err
			}
		}
	}

	klog.V(2).Infof("rendered %d sites, %d bonds (vertices: %v)", len(pts), len(bonds), st.DrawVertices)
	return pts, bonds, nil
}
