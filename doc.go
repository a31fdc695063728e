// Package envelope fits vector paths into curved four-sided envelopes.
//
// An envelope is a path of four Bézier segments describing a deformed
// quadrilateral. Fitting treats the envelope's sides as a curvilinear
// coordinate system: every point of the input path is expressed as a
// percentage position within the path's own bounding box and then
// projected to the corresponding position between the envelope's sides.
// The result bends and stretches the input so it fills the envelope, the
// way lettering is warped to follow a banner or an arch.
//
// The main entry point is [Morph]. The building blocks are exported too:
// [BezPath.Normalize] rewrites a path into all-cubic form, [ExtractAxes]
// reduces an envelope path to its four axis curves, and [Axes.MapPoint]
// projects a single percentage coordinate pair.
//
// Paths can be converted from and to SVG path data with [ParseSVGPath]
// and [BezPath.SVG].
package envelope
