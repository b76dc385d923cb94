// Package tangent computes tangency between circles in the plane: the points where the lines through an external point touch a circle, the common tangent lines of two circles, and the points where those lines touch each circle. All functions are pure and safe for concurrent use.
package tangent

import (
	"fmt"
	"math"
)

// Number of common tangents between two circles as returned by TangentCount.
const (
	Internal = 2 // circles overlap or one contains the other
	Tangent  = 3 // circles touch externally
	External = 4 // circles are separated
)

// Tangency holds the two points where the lines through an external point touch a circle. OnCircle is set when the point lies on the circumference, in which case T1 and T2 coincide.
type Tangency struct {
	T1, T2   Point
	OnCircle bool

	center Point
}

// Lines returns the normalized tangent lines through P and T1, and through P and T2. When P lies on the circumference both lines are the tangent at T1, perpendicular to the radius.
func (t Tangency) Lines(p Point) (Line, Line) {
	if t.OnCircle {
		n := t.T1.Sub(t.center)
		l := Line{n.X, n.Y, -n.Dot(t.T1)}.Normalize()
		return l, l
	}
	return lineThrough(p, t.T1), lineThrough(p, t.T2)
}

// lineThrough returns the normalized line through P and Q.
func lineThrough(p, q Point) Line {
	return Line{p.Y - q.Y, q.X - p.X, q.Y*p.X - q.X*p.Y}.Normalize()
}

// TangentPoints returns the points on circle c where the two lines through P are tangent to the circle. It returns ErrPointInsideCircle when P lies strictly inside the circle and ErrDegenerateInput when P coincides with the center or the radius is not positive.
// See https://math.stackexchange.com/questions/543496/how-to-find-the-equation-of-a-line-tangent-to-a-circle-that-passes-through-a-g
func TangentPoints(c Circle, p Point) (Tangency, error) {
	if !c.valid() || c.Radius == 0.0 || !finite(p.X, p.Y, p.Z) {
		return Tangency{}, fmt.Errorf("%w: %v and point %v", ErrDegenerateInput, c, p)
	}

	v := p.Sub(c.Center)
	v.Z = 0.0
	d := v.Length()
	if d == 0.0 {
		return Tangency{}, fmt.Errorf("%w: point %v coincides with center", ErrDegenerateInput, p)
	}

	q := d/c.Radius - 1.0
	if q < -OnCircleTolerance {
		return Tangency{}, fmt.Errorf("%w: point %v, %v", ErrPointInsideCircle, p, c)
	} else if q <= OnCircleTolerance {
		t := c.Center.Add(v.Mul(c.Radius / d))
		return Tangency{T1: t, T2: t, OnCircle: true, center: c.Center}, nil
	}

	// similar triangles: the tangency point lies at rho^2 along CP and rho*sqrt(1-rho^2) perpendicular to it
	rho := c.Radius / d
	ad := rho * rho
	bd := rho * math.Sqrt(1.0-rho*rho)
	along := c.Center.Add(v.Mul(ad))
	perp := v.Rot90CCW().Mul(bd)
	return Tangency{T1: along.Add(perp), T2: along.Sub(perp), center: c.Center}, nil
}

// TangentPointsWith is like TangentPoints but with the circle's center and radius replaced by the non-nil fields of o.
func TangentPointsWith(c Circle, p Point, o CircleOverride) (Tangency, error) {
	return TangentPoints(c.Override(o), p)
}

// TangentCount returns the number of common tangents of two circles: Tangent (3) when the circles touch externally, External (4) when they are separated, and Internal (2) otherwise. Squared distances are compared with a tolerance relative to their magnitude.
func TangentCount(c1, c2 Circle) int {
	distSq := distSq(c1.Center, c2.Center)
	radSumSq := (c1.Radius + c2.Radius) * (c1.Radius + c2.Radius)
	if math.Abs(distSq-radSumSq) <= tolerance(distSq, radSumSq) {
		return Tangent
	} else if radSumSq < distSq {
		return External
	}
	return Internal
}

// Relation is the relative position of two circles.
type Relation int

// see Relation
const (
	Separate Relation = iota
	ExternallyTangent
	Intersecting
	InternallyTangent
	Contained
	Concentric
)

func (r Relation) String() string {
	switch r {
	case Separate:
		return "separate"
	case ExternallyTangent:
		return "externally tangent"
	case Intersecting:
		return "intersecting"
	case InternallyTangent:
		return "internally tangent"
	case Contained:
		return "contained"
	case Concentric:
		return "concentric"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Tangents returns the number of distinct common tangent lines for the relation.
func (r Relation) Tangents() int {
	switch r {
	case Separate:
		return 4
	case ExternallyTangent:
		return 3
	case Intersecting:
		return 2
	case InternallyTangent:
		return 1
	}
	return 0
}

// Classify returns the relative position of two circles, using the same tolerance as TangentCount.
func Classify(c1, c2 Circle) Relation {
	if concentric(c1, c2) {
		return Concentric
	}
	distSq := distSq(c1.Center, c2.Center)
	radSumSq := (c1.Radius + c2.Radius) * (c1.Radius + c2.Radius)
	radDiffSq := (c1.Radius - c2.Radius) * (c1.Radius - c2.Radius)
	switch {
	case math.Abs(distSq-radSumSq) <= tolerance(distSq, radSumSq):
		return ExternallyTangent
	case radSumSq < distSq:
		return Separate
	case math.Abs(distSq-radDiffSq) <= tolerance(distSq, radDiffSq):
		return InternallyTangent
	case radDiffSq < distSq:
		return Intersecting
	}
	return Contained
}

func distSq(p, q Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return dx*dx + dy*dy
}

// concentric returns true if the centers coincide relative to the size of the circles.
func concentric(c1, c2 Circle) bool {
	return math.Sqrt(distSq(c1.Center, c2.Center)) <= tolerance(c1.Radius, c2.Radius)
}

// commonTangent returns the normalized line at signed distance r1 from the origin and r2 from c.
// See https://cp-algorithms.com/geometry/tangents-to-two-circles.html
func commonTangent(c Point, r1, r2 float64) (Line, error) {
	r := r2 - r1
	z := c.X*c.X + c.Y*c.Y
	d := z - r*r
	tol := tolerance(z, r*r)
	if d < -tol {
		return Line{}, ErrNoRealSolution
	} else if d <= tol {
		// circles touch, both candidates for this sign combination coincide
		d = 0.0
	} else {
		d = math.Sqrt(d)
	}
	l := Line{
		A: (c.X*r + c.Y*d) / z,
		B: (c.Y*r - c.X*d) / z,
		C: r1,
	}
	return l.Normalize(), nil
}

// TangentLines returns the distinct common tangent lines of two circles, normalized so that a^2+b^2 = 1. Separated circles have four, externally touching circles three, intersecting circles two, internally touching circles one and nested circles none. It returns ErrConcentricCircles when the circles share their center and ErrDegenerateInput when a radius is negative or a value is not finite.
func TangentLines(c1, c2 Circle) ([]Line, error) {
	if !c1.valid() || !c2.valid() {
		return nil, fmt.Errorf("%w: %v and %v", ErrDegenerateInput, c1, c2)
	} else if concentric(c1, c2) {
		return nil, fmt.Errorf("%w: %v and %v", ErrConcentricCircles, c1, c2)
	}

	v := c2.Center.Sub(c1.Center)
	lines := make([]Line, 0, 4)
	for _, i := range []float64{-1.0, 1.0} {
		for _, j := range []float64{-1.0, 1.0} {
			l, err := commonTangent(v, c1.Radius*i, c2.Radius*j)
			if err != nil {
				continue
			}
			// translate back from the frame centered at c1
			l.C -= l.A*c1.Center.X + l.B*c1.Center.Y
			if !hasLine(lines, l) {
				lines = append(lines, l)
			}
		}
	}
	return lines, nil
}

func hasLine(lines []Line, l Line) bool {
	for _, line := range lines {
		if line.Equals(l) {
			return true
		}
	}
	return false
}

// Touch is a common tangent line of two circles together with the points where it touches the first (A) and second (B) circle.
type Touch struct {
	Line Line
	A, B Point
}

// External returns true if the tangent does not cross between the circles, ie. both centers lie on the same side of the line.
func (t Touch) External(c1, c2 Circle) bool {
	return 0.0 <= t.Line.Eval(c1.Center)*t.Line.Eval(c2.Center)
}

// Length returns the length of the tangent segment between both touch points.
func (t Touch) Length() float64 {
	return t.A.Distance(t.B)
}

// TangentTouchPoints returns for each common tangent line of two circles the points where it touches both circles, by orthogonally projecting the centers onto the line. Errors are as for TangentLines.
func TangentTouchPoints(c1, c2 Circle) ([]Touch, error) {
	lines, err := TangentLines(c1, c2)
	if err != nil {
		return nil, err
	}

	touches := make([]Touch, 0, len(lines))
	for _, l := range lines {
		touches = append(touches, Touch{
			Line: l,
			A:    l.Project(c1.Center),
			B:    l.Project(c2.Center),
		})
	}
	return touches, nil
}
