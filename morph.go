package envelope

// MapPoint projects the percentage coordinates (px, py) into the deformed
// coordinate system framed by the axes.
//
// The two y-axes are tweened at the x percentage, running from axes[3]
// to axes[1] the way the x-axes do, giving a curve that floats between
// the sides but does not yet account for the bend of the x-axes. The
// tween is then stretched, by the [Match] transform, so that its
// endpoints come to rest on the two x-axes at the x percentage.
// Evaluating the stretched tween at the y percentage yields the final
// point.
//
// For px of 0 or 1 the tween is the corresponding y-axis itself and the
// stretch holds it in place, so points at the edge of the letter follow
// the envelope's side. For py of 0 or 1 the result is the stretched
// tween's own endpoint. Corners map to corners without drift beyond
// evaluation error.
func (axes Axes) MapPoint(px, py float64) (Point, error) {
	tween := axes[3].Lerp(axes[1], px)
	xSpot0 := axes[0].Eval(px)
	xSpot1 := axes[2].Eval(px)
	stretch, err := Match(tween.P0, tween.P3, xSpot0, xSpot1)
	if err != nil {
		return Point{}, err
	}
	return tween.Transform(stretch).Eval(py), nil
}

// percentize maps pt into the unit square relative to bounds. The caller
// is responsible for rejecting degenerate bounds.
func percentize(bounds Rect, pt Point) Point {
	return Pt(
		(pt.X-bounds.X0)/bounds.Width(),
		(pt.Y-bounds.Y0)/bounds.Height(),
	)
}

func morphPoint(axes Axes, bounds Rect, pt Point) (Point, error) {
	pct := percentize(bounds, pt)
	return axes.MapPoint(pct.X, pct.Y)
}

// MorphPath maps every point of letter through the deformed coordinate
// system of the axes, relative to the letter's own bounding box, and
// returns the morphed path.
//
// The letter is first normalized, so every element of the result after a
// subpath's MoveTo is a cubic; a ClosePath becomes the morphed cubic of
// its closing line, bending with the envelope like any other edge. The
// result has exactly as many elements as the letter. The bounding box is
// taken over all anchor and control points of the normalized letter. A
// box with zero width or height yields a *DegenerateBoundingBoxError.
//
// MorphPath either morphs the whole letter or fails without producing
// output; there is no partial result.
func MorphPath(letter BezPath, axes Axes) (BezPath, error) {
	norm, err := letter.Normalize()
	if err != nil {
		return nil, err
	}
	bounds := norm.ControlBox()
	if bounds.Width() == 0 || bounds.Height() == 0 {
		return nil, &DegenerateBoundingBoxError{Bounds: bounds}
	}
	out := make(BezPath, 0, len(norm))
	for i := range norm {
		el := norm[i]
		switch el.Kind {
		case MoveToKind:
			pt, err := morphPoint(axes, bounds, el.P0)
			if err != nil {
				return nil, err
			}
			out.MoveTo(pt)
		case CubicToKind:
			p0, err := morphPoint(axes, bounds, el.P0)
			if err != nil {
				return nil, err
			}
			p1, err := morphPoint(axes, bounds, el.P1)
			if err != nil {
				return nil, err
			}
			p2, err := morphPoint(axes, bounds, el.P2)
			if err != nil {
				return nil, err
			}
			out.CubicTo(p0, p1, p2)
		}
	}
	return out, nil
}

// Morph fits the letter path into the envelope path. The envelope must
// reduce, after normalization, to one MoveTo followed by four cubic
// segments; see [ExtractAxes]. The letter may be any path built from the
// supported segment kinds.
//
// The returned path has the same number of elements as the letter, with
// every element other than the leading MoveTo of a subpath expressed as
// a cubic.
func Morph(letter, envelope BezPath) (BezPath, error) {
	axes, err := ExtractAxes(envelope)
	if err != nil {
		return nil, err
	}
	return MorphPath(letter, axes)
}
