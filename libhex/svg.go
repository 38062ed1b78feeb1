package libhex

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/fine-structures/honeycomb/gohex"
)

// DocumentMargin is the padding placed around the shapes of a standalone document.
const DocumentMargin = 10

// FragmentWriter is a gohex.ShapeSink that writes one SVG element per line as shapes arrive.
type FragmentWriter struct {
	out *bufio.Writer
	buf []byte
}

func NewFragmentWriter(w io.Writer) *FragmentWriter {
	return &FragmentWriter{
		out: bufio.NewWriter(w),
		buf: make([]byte, 0, 256),
	}
}

func (fw *FragmentWriter) AddShape(s gohex.Shape) error {
	fw.buf = s.AppendSVG(fw.buf[:0])
	fw.buf = append(fw.buf, '\n')
	_, err := fw.out.Write(fw.buf)
	return err
}

// Flush writes any buffered lines to the underlying writer.
func (fw *FragmentWriter) Flush() error {
	return fw.out.Flush()
}

// FragmentLines returns each shape as a single SVG element.
func FragmentLines(shapes []gohex.Shape) []string {
	lines := make([]string, len(shapes))
	var buf []byte
	for i, s := range shapes {
		buf = s.AppendSVG(buf[:0])
		lines[i] = string(buf)
	}
	return lines
}

// WriteFragment writes shapes one per line with no enclosing <svg> element.
func WriteFragment(w io.Writer, shapes []gohex.Shape) error {
	fw := NewFragmentWriter(w)
	for _, s := range shapes {
		if err := fw.AddShape(s); err != nil {
			return err
		}
	}
	return fw.Flush()
}

// ShapeBounds returns the box covering all shapes, or ok == false if there are none.
func ShapeBounds(shapes []gohex.Shape) (min, max gohex.Point, ok bool) {
	min = gohex.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = gohex.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range shapes {
		lo, hi := s.Bounds()
		min.X = math.Min(min.X, lo.X)
		min.Y = math.Min(min.Y, lo.Y)
		max.X = math.Max(max.X, hi.X)
		max.Y = math.Max(max.Y, hi.Y)
		ok = true
	}
	return
}

// WriteDocument writes shapes wrapped in a standalone <svg> document whose viewBox covers them.
func WriteDocument(w io.Writer, shapes []gohex.Shape) error {
	min, max, ok := ShapeBounds(shapes)
	if !ok {
		min, max = gohex.Point{}, gohex.Point{}
	}
	min.X -= DocumentMargin
	min.Y -= DocumentMargin
	max.X += DocumentMargin
	max.Y += DocumentMargin

	x0, y0 := math.Floor(min.X), math.Floor(min.Y)
	width := math.Ceil(max.X) - x0
	height := math.Ceil(max.Y) - y0

	_, err := fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%g" height="%g" viewBox="%g %g %g %g">
`, width, height, x0, y0, width, height)
	if err != nil {
		return err
	}
	if err = WriteFragment(w, shapes); err != nil {
		return err
	}
	_, err = io.WriteString(w, "</svg>\n")
	return err
}
