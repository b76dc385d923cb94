package tangent

import "errors"

// ErrPointInsideCircle is returned when no tangent exists because the point lies strictly inside the circle.
var ErrPointInsideCircle = errors.New("point inside circle")

// ErrDegenerateInput is returned when the point coincides with the circle's center, or when a radius is non-positive or a coordinate is not finite.
var ErrDegenerateInput = errors.New("degenerate input")

// ErrConcentricCircles is returned when two circles share their center so that their common tangents are undefined.
var ErrConcentricCircles = errors.New("concentric circles")

// ErrNoRealSolution signals a negative discriminant for a single sign combination of the common tangent construction. It is absorbed by TangentLines and only returned by the unexported per-combination solver.
var ErrNoRealSolution = errors.New("no real solution")
