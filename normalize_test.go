package envelope

import (
	"errors"
	"testing"
)

func TestNormalizeLine(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(3, 6))

	got, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(1, 2), Pt(2, 4), Pt(3, 6)),
	}
	diff(t, want, got)
}

func TestNormalizeShorthands(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1, 2))
	p.HLineTo(4)
	p.VLineTo(8)

	got, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	want := BezPath{
		MoveTo(Pt(1, 2)),
		CubicTo(Pt(2, 2), Pt(3, 2), Pt(4, 2)),
		CubicTo(Pt(4, 4), Pt(4, 6), Pt(4, 8)),
	}
	diff(t, want, got)
}

func TestNormalizeQuad(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(3, 0), Pt(3, 3))

	got, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(2, 0), Pt(3, 1), Pt(3, 3)),
	}
	diff(t, want, got)

	// The raised cubic traces the same curve.
	q := QuadBez{Pt(0, 0), Pt(3, 0), Pt(3, 3)}
	cb := CubicBez{Pt(0, 0), got[1].P0, got[1].P1, got[1].P2}
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assertNear(t, cb.Eval(tt), q.Eval(tt), 1e-9)
	}
}

func TestNormalizeClose(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(2, 3))
	p.LineTo(Pt(5, 3))
	// ClosePath becomes the closing line's cubic and leaves the current
	// point at the subpath start, which the following shorthand resolves
	// against.
	p.ClosePath()
	p.HLineTo(8)

	got, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	want := BezPath{
		MoveTo(Pt(2, 3)),
		CubicTo(Pt(3, 3), Pt(4, 3), Pt(5, 3)),
		CubicTo(Pt(4, 3), Pt(3, 3), Pt(2, 3)),
		CubicTo(Pt(4, 3), Pt(6, 3), Pt(8, 3)),
	}
	diff(t, want, got)
}

func TestNormalizeIdempotent(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(3, 0))
	p.QuadTo(Pt(6, 0), Pt(6, 3))
	p.ClosePath()

	once, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	twice, err := once.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, once, twice)
}

func TestNormalizeUnsupported(t *testing.T) {
	p := BezPath{
		MoveTo(Pt(0, 0)),
		{Kind: PathElementKind(42)},
	}
	_, err := p.Normalize()
	var serr *UnsupportedSegmentError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, expected an UnsupportedSegmentError", err)
	}
}
