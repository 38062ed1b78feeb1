package gohex

import (
	"math"
	"strconv"
)

// AppendCoord appends a coordinate in shortest round-trip form, keeping a ".0" on integral values (e.g. "100.0").
func AppendCoord(dst []byte, v float64) []byte {
	if useExponent(v) {
		return strconv.AppendFloat(dst, v, 'e', -1, 64)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', -1, 64)
	for _, c := range dst[start:] {
		if c == '.' {
			return dst
		}
	}
	return append(dst, '.', '0')
}

// AppendLength appends a length or width in shortest form ("6", "8.5", "2.6").
func AppendLength(dst []byte, v float64) []byte {
	if useExponent(v) {
		return strconv.AppendFloat(dst, v, 'e', -1, 64)
	}
	return strconv.AppendFloat(dst, v, 'f', -1, 64)
}

func useExponent(v float64) bool {
	abs := math.Abs(v)
	return abs != 0 && (abs < 1e-4 || abs >= 1e16)
}

func (poly *Polygon) AppendSVG(dst []byte) []byte {
	dst = append(dst, `<polygon points="`...)
	for i, pt := range poly.Points {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = AppendCoord(dst, pt.X)
		dst = append(dst, ',')
		dst = AppendCoord(dst, pt.Y)
	}
	dst = append(dst, `" style="`...)
	dst = append(dst, poly.Style...)
	dst = append(dst, `" />`...)
	return dst
}

func (poly *Polygon) Bounds() (min, max Point) {
	if len(poly.Points) == 0 {
		return
	}
	min, max = poly.Points[0], poly.Points[0]
	for _, pt := range poly.Points[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return
}

func (c *Circle) AppendSVG(dst []byte) []byte {
	dst = append(dst, `<circle cx="`...)
	dst = AppendCoord(dst, c.Center.X)
	dst = append(dst, `" cy="`...)
	dst = AppendCoord(dst, c.Center.Y)
	dst = append(dst, `" r="`...)
	dst = AppendLength(dst, c.Radius)
	dst = append(dst, `" stroke="`...)
	dst = append(dst, c.Stroke...)
	dst = append(dst, `" stroke-width="`...)
	dst = AppendLength(dst, c.StrokeWidth)
	dst = append(dst, `" fill="`...)
	dst = append(dst, c.Fill...)
	dst = append(dst, `" />`...)
	return dst
}

// Bounds includes half the stroke width on every side.
func (c *Circle) Bounds() (min, max Point) {
	r := c.Radius + c.StrokeWidth/2
	min = Point{c.Center.X - r, c.Center.Y - r}
	max = Point{c.Center.X + r, c.Center.Y + r}
	return
}
