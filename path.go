package envelope

import (
	"fmt"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a horizontal line from the current location to the given x
	// coordinate.
	HLineToKind
	// Draw a vertical line from the current location to the given y
	// coordinate.
	VLineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case HLineToKind:
		return "HLineTo"
	case VLineToKind:
		return "VLineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath. The HLineTo
// and VLineTo kinds carry a single coordinate each, in P0.X and P0.Y
// respectively; the missing coordinate is implied by the current point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case HLineToKind:
		return fmt.Sprintf("HLineTo(%g)", el.P0.X)
	case VLineToKind:
		return fmt.Sprintf("VLineTo(%g)", el.P0.Y)
	default:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// HLineTo draws a horizontal line to the given x coordinate.
func HLineTo(x float64) PathElement {
	return PathElement{Kind: HLineToKind, P0: Point{X: x}}
}

// VLineTo draws a vertical line to the given y coordinate.
func VLineTo(y float64) PathElement {
	return PathElement{Kind: VLineToKind, P0: Point{Y: y}}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path, represented as a sequence of path elements.
//
// Conceptually, a BezPath contains zero or more subpaths. Each subpath
// begins with a MoveTo, then has zero or more drawing elements, and
// optionally ends with a ClosePath.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// HLineTo pushes a "horizontal line to" element onto the path.
func (p *BezPath) HLineTo(x float64) { p.Push(HLineTo(x)) }

// VLineTo pushes a "vertical line to" element onto the path.
func (p *BezPath) VLineTo(y float64) { p.Push(VLineTo(y)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// ControlBox returns a rectangle that conservatively encloses the path.
//
// This uses anchor and control points directly rather than computing tight
// bounds for curve elements. The current point is tracked across elements
// so that the shorthand HLineTo and VLineTo elements resolve.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	var cur Point
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
			cur = el.P0
		case HLineToKind:
			cur = Pt(el.P0.X, cur.Y)
			addPt(cur)
		case VLineToKind:
			cur = Pt(cur.X, el.P0.Y)
			addPt(cur)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
			cur = el.P1
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
			cur = el.P2
		case ClosePathKind:
		}
	}

	return cbox
}

// Transform returns a new path with an affine transformation applied to the
// path. HLineTo and VLineTo elements are resolved against the current point
// and returned as LineTo elements, since the shorthand forms cannot express
// an arbitrarily transformed line.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, 0, len(p))
	var cur Point
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind:
			cur = el.P0
			els.MoveTo(el.P0.Transform(aff))
		case LineToKind:
			cur = el.P0
			els.LineTo(el.P0.Transform(aff))
		case HLineToKind:
			cur = Pt(el.P0.X, cur.Y)
			els.LineTo(cur.Transform(aff))
		case VLineToKind:
			cur = Pt(cur.X, el.P0.Y)
			els.LineTo(cur.Transform(aff))
		case QuadToKind:
			cur = el.P1
			els.QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
		case CubicToKind:
			cur = el.P2
			els.CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
		case ClosePathKind:
			els.ClosePath()
		}
	}
	return els
}
