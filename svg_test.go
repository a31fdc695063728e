package envelope

import (
	"errors"
	"testing"
)

func TestParseSVGPath(t *testing.T) {
	cases := []struct {
		data string
		want BezPath
	}{
		{
			"",
			BezPath{},
		},
		{
			"M1,2 L3,4 H5 V6 Q7,8 9,10 C11,12 13,14 15,16 Z",
			BezPath{
				MoveTo(Pt(1, 2)),
				LineTo(Pt(3, 4)),
				HLineTo(5),
				VLineTo(6),
				QuadTo(Pt(7, 8), Pt(9, 10)),
				CubicTo(Pt(11, 12), Pt(13, 14), Pt(15, 16)),
				ClosePath(),
			},
		},
		{
			// relative commands resolve against the current point
			"m1,2 l1,1 h2 v3 c1,0 2,0 2,2 z",
			BezPath{
				MoveTo(Pt(1, 2)),
				LineTo(Pt(2, 3)),
				HLineTo(4),
				VLineTo(6),
				CubicTo(Pt(5, 6), Pt(6, 6), Pt(6, 8)),
				ClosePath(),
			},
		},
		{
			// implicit repetition; after a moveto the repeated command is
			// a lineto
			"M0,0 1,1 2,2 L3,3 4,4",
			BezPath{
				MoveTo(Pt(0, 0)),
				LineTo(Pt(1, 1)),
				LineTo(Pt(2, 2)),
				LineTo(Pt(3, 3)),
				LineTo(Pt(4, 4)),
			},
		},
		{
			// S reflects the previous cubic control point
			"M0,0 C0,1 1,2 2,2 S4,2 4,0",
			BezPath{
				MoveTo(Pt(0, 0)),
				CubicTo(Pt(0, 1), Pt(1, 2), Pt(2, 2)),
				CubicTo(Pt(3, 2), Pt(4, 2), Pt(4, 0)),
			},
		},
		{
			// S without a preceding curve uses the current point
			"M0,0 S1,1 2,0",
			BezPath{
				MoveTo(Pt(0, 0)),
				CubicTo(Pt(0, 0), Pt(1, 1), Pt(2, 0)),
			},
		},
		{
			// T reflects the previous quadratic control point
			"M0,0 Q1,1 2,0 T4,0",
			BezPath{
				MoveTo(Pt(0, 0)),
				QuadTo(Pt(1, 1), Pt(2, 0)),
				QuadTo(Pt(3, -1), Pt(4, 0)),
			},
		},
		{
			// negative and fractional numbers, minimal separators
			"M-1.5.5L.5-2",
			BezPath{
				MoveTo(Pt(-1.5, 0.5)),
				LineTo(Pt(0.5, -2)),
			},
		},
	}
	for _, c := range cases {
		got, err := ParseSVGPath(c.data)
		if err != nil {
			t.Fatalf("ParseSVGPath(%q): %s", c.data, err)
		}
		diff(t, c.want, got)
	}
}

func TestParseSVGPathArc(t *testing.T) {
	_, err := ParseSVGPath("M0,0 A1,1 0 0 0 2,2")
	var serr *UnsupportedSegmentError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, expected an UnsupportedSegmentError", err)
	}
	if serr.Segment != "A" {
		t.Fatalf("got segment %q, expected %q", serr.Segment, "A")
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	for _, data := range []string{
		"0,0 L1,1",   // missing leading command
		"M0,0 X1,1",  // unknown command
		"M0,0 L1",    // not enough numbers
		"M0,0 Z 1,1", // numbers after closepath
	} {
		if _, err := ParseSVGPath(data); err == nil {
			t.Errorf("ParseSVGPath(%q) succeeded, expected an error", data)
		}
	}
}

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0.5, 1))
	p.LineTo(Pt(2, 3))
	p.HLineTo(4)
	p.VLineTo(5)
	p.QuadTo(Pt(6, 7), Pt(8, 9))
	p.CubicTo(Pt(10, 11), Pt(12, 13), Pt(14, 15))
	p.ClosePath()

	got := p.SVG(SVGOptions{})
	want := "M0.5,1 L2,3 H4 V5 Q6,7 8,9 C10,11 12,13 14,15 Z"
	diff(t, want, got)
}

func TestSVGPrecision(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1.23456, 2.5))
	p.LineTo(Pt(3.14159, 0.0625))

	got := p.SVG(SVGOptions{MaxPrecision: 2})
	want := "M1.23,2.5 L3.14,0.06"
	diff(t, want, got)
}

func TestSVGRoundTrip(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0.5, -1))
	p.LineTo(Pt(2, 3.25))
	p.HLineTo(-4)
	p.VLineTo(5)
	p.QuadTo(Pt(6, 7), Pt(8, 9))
	p.CubicTo(Pt(10, 11), Pt(12, 13), Pt(14, 15))
	p.ClosePath()

	got, err := ParseSVGPath(p.SVG(SVGOptions{}))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, p, got)
}
