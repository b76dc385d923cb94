package tangent

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the tolerance used for comparing floating point values. Comparisons between lengths scale it by the magnitude of the operands so that results do not depend on the scale of the input.
const Epsilon = 1e-9

// OnCircleTolerance is the relative tolerance for a point to be considered on the circumference of a circle.
const OnCircleTolerance = 1e-8

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// equalRel returns true if a and b are equal with tolerance Epsilon relative to the largest of |a| and |b|.
func equalRel(a, b float64) bool {
	return scalar.EqualWithinRel(a, b, Epsilon)
}

// tolerance returns the absolute tolerance for comparing quantities of magnitude up to max |z|.
func tolerance(z ...float64) float64 {
	m := 0.0
	for _, v := range z {
		m = math.Max(m, math.Abs(v))
	}
	return Epsilon * m
}

func clamp(f, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, f))
}

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 3D space, Z is zero for planar use. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y, Z float64
}

// Pt returns a planar point.
func Pt(x, y float64) Point {
	return Point{x, y, 0.0}
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0 && p.Z == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y) && Equal(p.Z, q.Z)
}

// Neg negates x, y and z.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul multiplies x, y and z by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y, f * p.Z}
}

// Div divides x, y and z by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f, p.Z / f}
}

// Rot90CW rotates the line OP by 90 degrees CW in the XY plane.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X, p.Z}
}

// Rot90CCW rotates the line OP by 90 degrees CCW in the XY plane.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X, p.Z}
}

// Dot returns the planar dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the planar length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the planar distance between P and Q, the z coordinate is ignored.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// Distance3 returns the Euclidean distance between P and Q including the z coordinate.
func (p Point) Distance3(q Point) float64 {
	return math.Sqrt((q.X-p.X)*(q.X-p.X) + (q.Y-p.Y)*(q.Y-p.Y) + (q.Z-p.Z)*(q.Z-p.Z))
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Norm normalized OP to be of certain length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if d == 0.0 {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length, p.Z}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y, (1-t)*p.Z + t*q.Z}
}

func (p Point) String() string {
	if p.Z != 0.0 {
		return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
