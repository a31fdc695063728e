package envelope

import (
	"fmt"
)

// MissingAxisError reports an envelope path that yields fewer than the four
// axis curves the morph requires.
type MissingAxisError struct {
	// Axes is the number of usable axis curves found.
	Axes int
}

func (err *MissingAxisError) Error() string {
	return fmt.Sprintf("envelope path has %d axis curves, need 4", err.Axes)
}

// UnsupportedSegmentError reports a path segment outside the supported set
// of move, line, horizontal/vertical line, quadratic, cubic, and close.
type UnsupportedSegmentError struct {
	Segment string
}

func (err *UnsupportedSegmentError) Error() string {
	return fmt.Sprintf("unsupported path segment %q", err.Segment)
}

// DegenerateBoundingBoxError reports a letter whose bounding box has zero
// width or height, leaving percentage coordinates undefined.
type DegenerateBoundingBoxError struct {
	Bounds Rect
}

func (err *DegenerateBoundingBoxError) Error() string {
	return fmt.Sprintf("letter bounding box (%g, %g)-(%g, %g) has zero width or height",
		err.Bounds.X0, err.Bounds.Y0, err.Bounds.X1, err.Bounds.Y1)
}

// DegenerateTweenError reports a tweened y axis whose endpoints coincide,
// leaving the stretch transform undefined.
type DegenerateTweenError struct {
	// At is the coincident endpoint.
	At Point
}

func (err *DegenerateTweenError) Error() string {
	return fmt.Sprintf("tweened axis endpoints coincide at %s", err.At)
}
