package envelope

// normalizer rewrites path elements into absolute cubic form, carrying the
// current point and subpath start point across elements. The zero value is
// ready to use.
type normalizer struct {
	current Point
	start   Point
}

// normalize returns el rewritten as an absolute cubic element. MoveTo
// passes through unchanged, updating only the traversal state; every
// other element becomes a CubicTo:
//
//   - LineTo places the control points at one third and two thirds of the
//     way along the line, so the cubic traces the line exactly.
//   - HLineTo and VLineTo are rewritten as LineTo against the current
//     point, then converted as lines.
//   - QuadTo is degree-raised via [QuadBez.Raise].
//   - CubicTo passes through.
//   - ClosePath becomes the line back to the subpath start, converted
//     like any other line.
//
// Elements of any other kind yield an *UnsupportedSegmentError.
func (n *normalizer) normalize(el PathElement) (PathElement, error) {
	switch el.Kind {
	case MoveToKind:
		n.current = el.P0
		n.start = el.P0
		return el, nil
	case LineToKind:
		return n.lineTo(el.P0), nil
	case HLineToKind:
		return n.lineTo(Pt(el.P0.X, n.current.Y)), nil
	case VLineToKind:
		return n.lineTo(Pt(n.current.X, el.P0.Y)), nil
	case QuadToKind:
		cb := QuadBez{n.current, el.P0, el.P1}.Raise()
		n.current = cb.P3
		return CubicTo(cb.P1, cb.P2, cb.P3), nil
	case CubicToKind:
		n.current = el.P2
		return el, nil
	case ClosePathKind:
		return n.lineTo(n.start), nil
	default:
		return PathElement{}, &UnsupportedSegmentError{Segment: el.Kind.String()}
	}
}

// lineTo converts the line from the current point to end into an equivalent
// cubic. The closing line of a subpath is converted the same way, with the
// subpath start as the target.
func (n *normalizer) lineTo(end Point) PathElement {
	third := end.Sub(n.current).Div(3)
	el := CubicTo(
		n.current.Translate(third),
		end.Translate(third.Negate()),
		end,
	)
	n.current = end
	return el
}

// Normalize returns p with every element other than MoveTo rewritten as
// an absolute cubic Bézier, per the rules of the package normalizer. A
// ClosePath element becomes the cubic of its closing line, so the closing
// edge is carried as geometry rather than as a marker. Normalizing an
// all-cubic path returns an equal path.
func (p BezPath) Normalize() (BezPath, error) {
	var n normalizer
	out := make(BezPath, 0, len(p))
	for i := range p {
		el, err := n.normalize(p[i])
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}
