package gohex_test

import (
	"math"
	"testing"

	"github.com/fine-structures/honeycomb/gohex"
	"github.com/stretchr/testify/assert"
)

func TestAppendCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100.0"},
		{0, "0.0"},
		{-15, "-15.0"},
		{48.03847577293369, "48.03847577293369"},
		{-6.06217782649107, "-6.06217782649107"},
		{0.5, "0.5"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
		{math.Copysign(0, -1), "-0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(gohex.AppendCoord(nil, tt.in)), "AppendCoord(%v)", tt.in)
	}
}

func TestAppendLength(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6, "6"},
		{8.5, "8.5"},
		{2.6, "2.6"},
		{0, "0"},
		{1e20, "1e+20"},
		{2.5e-7, "2.5e-07"},
		{12345678901234567, "1.2345678901234568e+16"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(gohex.AppendLength(nil, tt.in)), "AppendLength(%v)", tt.in)
	}
}

func TestPolygonSVG(t *testing.T) {
	poly := gohex.Polygon{
		Points: []gohex.Point{{83, 151.96152422706632}, {80, 147.96152422706632}, {60.5, 1}},
		Style:  "fill:#09c;",
	}
	got := string(poly.AppendSVG(nil))
	assert.Equal(t, `<polygon points="83.0,151.96152422706632 80.0,147.96152422706632 60.5,1.0" style="fill:#09c;" />`, got)

	min, max := poly.Bounds()
	assert.Equal(t, gohex.Point{60.5, 1}, min)
	assert.Equal(t, gohex.Point{83, 151.96152422706632}, max)
}

func TestCircleSVG(t *testing.T) {
	c := gohex.Circle{
		Center:      gohex.Point{85, 48.03847577293369},
		Radius:      8.5,
		Stroke:      "gray",
		StrokeWidth: 2.6,
		Fill:        "white",
	}
	assert.Equal(t,
		`<circle cx="85.0" cy="48.03847577293369" r="8.5" stroke="gray" stroke-width="2.6" fill="white" />`,
		string(c.AppendSVG(nil)))

	c.Radius = 6
	assert.Contains(t, string(c.AppendSVG(nil)), ` r="6" `)

	min, max := c.Bounds()
	assert.InDelta(t, 85-7.3, min.X, 1e-12)
	assert.InDelta(t, 85+7.3, max.X, 1e-12)
}
