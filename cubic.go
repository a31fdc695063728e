package envelope

// CubicBez is a single cubic Bézier segment: a start anchor, two control
// points, and an end anchor.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t, using the cubic blending
// formula B(t) = (1−t)³·P0 + 3(1−t)²t·P1 + 3(1−t)t²·P2 + t³·P3.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

// Lerp linearly interpolates between two cubics, control point by control
// point.
func (cb CubicBez) Lerp(o CubicBez, t float64) CubicBez {
	return CubicBez{
		cb.P0.Lerp(o.P0, t),
		cb.P1.Lerp(o.P1, t),
		cb.P2.Lerp(o.P2, t),
		cb.P3.Lerp(o.P3, t),
	}
}

// Reverse returns a new CubicBez describing the same curve as this one, but
// with the direction of travel flipped.
func (cb CubicBez) Reverse() CubicBez {
	return CubicBez{cb.P3, cb.P2, cb.P1, cb.P0}
}

// Transform applies an affine transformation to all four control points.
func (cb CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		cb.P0.Transform(aff),
		cb.P1.Transform(aff),
		cb.P2.Transform(aff),
		cb.P3.Transform(aff),
	}
}

func (cb CubicBez) IsNaN() bool {
	return cb.P0.IsNaN() || cb.P1.IsNaN() || cb.P2.IsNaN() || cb.P3.IsNaN()
}
