package chartpath

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the current subpath.
	ClosePathKind
)

// PathElement is a single drawing command of a [Path].
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool { return el.P0.IsInf() }
func (el PathElement) IsNaN() bool { return el.P0.IsNaN() }

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of straight-line drawing commands, as produced by chart
// shapes. Conceptually, a Path contains zero or more subpaths. Each subpath
// begins with a MoveTo, then has zero or more LineTo elements, and optionally
// ends with a ClosePath.
//
// The zero value is an empty path, which draws nothing.
type Path []PathElement

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
//
// If LineTo is called immediately after ClosePath then the current subpath
// starts at the initial point of the previous subpath.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Points returns the vertices of the path in drawing order. ClosePath elements
// contribute no point.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// IsClosed reports whether the last subpath of p ends with a ClosePath element.
func (p Path) IsClosed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

// IsEmpty reports whether p draws nothing at all.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Truncate truncates the path, keeping the first n elements.
func (p *Path) Truncate(n int) {
	if n >= len(*p) {
		return
	}
	*p = (*p)[:n]
}

func (p Path) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns the smallest rectangle enclosing all vertices of the path.
// For an empty path it returns the zero rectangle.
func (p Path) ControlBox() Rect {
	first := true
	var cbox Rect
	for _, el := range p {
		pt, ok := el.EndPoint()
		if !ok {
			continue
		}
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	return cbox
}

// SVG converts the path to an SVG path string representation.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
