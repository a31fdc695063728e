package envelope

import (
	"errors"
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestMatch(t *testing.T) {
	const epsilon = 1e-9
	cases := []struct {
		p1, p2, a1, a2 Point
	}{
		// pure translation
		{Pt(0, 0), Pt(1, 0), Pt(5, 5), Pt(6, 5)},
		// quarter turn with doubling
		{Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(0, 2)},
		// arbitrary segments
		{Pt(1, 2), Pt(4, 6), Pt(-3, 5), Pt(10, -2)},
		{Pt(-2, -2), Pt(-2, 3), Pt(0, 0), Pt(7, 1)},
	}
	for _, c := range cases {
		aff, err := Match(c.p1, c.p2, c.a1, c.a2)
		if err != nil {
			t.Fatalf("Match(%s, %s, %s, %s): %s", c.p1, c.p2, c.a1, c.a2, err)
		}
		assertNear(t, c.p1.Transform(aff), c.a1, epsilon)
		assertNear(t, c.p2.Transform(aff), c.a2, epsilon)

		// Uniform scaling preserves length ratios along the segment.
		mid := c.p1.Lerp(c.p2, 0.25)
		assertNear(t, mid.Transform(aff), c.a1.Lerp(c.a2, 0.25), epsilon)
	}
}

func TestMatchIdentity(t *testing.T) {
	aff, err := Match(Pt(1, 2), Pt(3, 5), Pt(1, 2), Pt(3, 5))
	if err != nil {
		t.Fatal(err)
	}
	want := Identity.Coefficients()
	got := aff.Coefficients()
	for i := 0; i < 6; i++ {
		if d := math.Abs(got[i] - want[i]); d > 1e-9 {
			t.Fatalf("coefficient %d: got %g, expected %g", i, got[i], want[i])
		}
	}
}

func TestMatchDegenerate(t *testing.T) {
	_, err := Match(Pt(2, 3), Pt(2, 3), Pt(0, 0), Pt(1, 1))
	var terr *DegenerateTweenError
	if !errors.As(err, &terr) {
		t.Fatalf("got %v, expected a DegenerateTweenError", err)
	}
	diff(t, Pt(2, 3), terr.At)
}
