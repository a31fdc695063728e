package envelope

// Axes are the four directed boundary curves of an envelope. axes[0] and
// axes[2] are the two x-axes, running along the top and bottom of the
// envelope; axes[1] and axes[3] are the two y-axes, running along the
// sides. The y-axes are oriented so that they run in parallel, start to
// end.
type Axes [4]CubicBez

// ExtractAxes reduces an envelope path to its four axis curves. After
// normalization the path must consist of one MoveTo followed by exactly
// four cubic segments; an envelope drawn with line or quadratic sides is
// acceptable, since those normalize to cubics. ClosePath elements are
// tolerated and ignored, and cubics past the fourth are presumed to be
// trailing artifacts of how the envelope was drawn and are dropped.
//
// ExtractAxes returns a *MissingAxisError if fewer than four cubics are
// found, and an *UnsupportedSegmentError if the path contains a segment
// outside the supported set.
func ExtractAxes(envelope BezPath) (Axes, error) {
	var axes Axes
	var n normalizer
	cubics := 0
	for i := range envelope {
		if envelope[i].Kind == ClosePathKind {
			continue
		}
		start := n.current
		el, err := n.normalize(envelope[i])
		if err != nil {
			return Axes{}, err
		}
		if el.Kind != CubicToKind {
			continue
		}
		cb := CubicBez{start, el.P0, el.P1, el.P2}
		// The third and fourth sides are drawn back toward the subpath
		// start; reversing them makes axes[1] and axes[3] run in
		// parallel.
		switch cubics {
		case 0:
			axes[0] = cb
		case 1:
			axes[1] = cb
		case 2:
			axes[2] = cb.Reverse()
		case 3:
			axes[3] = cb.Reverse()
		default:
			// dropped
		}
		cubics++
	}
	if cubics < 4 {
		return Axes{}, &MissingAxisError{Axes: cubics}
	}
	return axes, nil
}
