package tangent

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Circle is a circle in the XY plane at height Center.Z.
type Circle struct {
	Center Point
	Radius float64
}

// C returns a planar circle with center (x,y) and radius r.
func C(x, y, r float64) Circle {
	return Circle{Pt(x, y), r}
}

// Contains returns true if P lies inside or on the circle, only x and y are considered.
func (c Circle) Contains(p Point) bool {
	return p.Distance(c.Center) <= c.Radius*(1.0+OnCircleTolerance)
}

// Override returns a copy of the circle with the non-nil fields of o replacing the center and radius.
func (c Circle) Override(o CircleOverride) Circle {
	if o.CenterX != nil {
		c.Center.X = *o.CenterX
	}
	if o.CenterY != nil {
		c.Center.Y = *o.CenterY
	}
	if o.Radius != nil {
		c.Radius = *o.Radius
	}
	return c
}

// Equals returns true if both circles have the same center and radius with tolerance Epsilon.
func (c Circle) Equals(q Circle) bool {
	return c.Center.Equals(q.Center) && Equal(c.Radius, q.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle%v r=%g", c.Center, c.Radius)
}

func (c Circle) valid() bool {
	return 0.0 <= c.Radius && finite(c.Center.X, c.Center.Y, c.Center.Z, c.Radius)
}

// CircleOverride holds optional replacements for a circle's center and radius. Nil fields fall back to the circle's own values.
type CircleOverride struct {
	CenterX *float64
	CenterY *float64
	Radius  *float64
}

////////////////////////////////////////////////////////////////

// Line is the line a*x + b*y + c = 0. Lines returned by the tangent solver are normalized so that a^2+b^2 = 1.
type Line struct {
	A, B, C float64
}

// IsDegenerate returns true if both a and b are zero, in which case the coefficients do not describe a line.
func (l Line) IsDegenerate() bool {
	return l.A == 0.0 && l.B == 0.0
}

// Eval returns a*x + b*y + c, which is the signed distance from P to the line for normalized lines.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Distance returns the perpendicular distance from P to the line.
func (l Line) Distance(p Point) float64 {
	return math.Abs(l.Eval(p)) / math.Hypot(l.A, l.B)
}

// Normalize scales the coefficients so that a^2+b^2 = 1.
func (l Line) Normalize() Line {
	n := math.Hypot(l.A, l.B)
	if n == 0.0 {
		return l
	}
	return Line{l.A / n, l.B / n, l.C / n}
}

// Equals returns true if both lines describe the same set of points, regardless of orientation.
func (l Line) Equals(q Line) bool {
	l, q = l.Normalize(), q.Normalize()
	if Equal(l.A, q.A) && Equal(l.B, q.B) && equalRel(l.C, q.C) {
		return true
	}
	return Equal(l.A, -q.A) && Equal(l.B, -q.B) && equalRel(l.C, -q.C)
}

// Points returns two distinct points on the line, evaluated at x=0 and x=1, or at y=0 and y=1 when the line is closer to vertical.
func (l Line) Points() (Point, Point) {
	if math.Abs(l.A) <= math.Abs(l.B) {
		return Pt(0.0, -l.C/l.B), Pt(1.0, -(l.A+l.C)/l.B)
	}
	return Pt(-l.C/l.A, 0.0), Pt(-(l.B+l.C)/l.A, 1.0)
}

// Project returns the orthogonal projection of P onto the line. The z coordinate of P is kept.
func (l Line) Project(p Point) Point {
	p0, p1 := l.Points()
	d := p1.Sub(p0)
	v := p.Sub(p0)
	k := -d.PerpDot(v) / d.Dot(d)
	q := p.Add(d.Rot90CCW().Mul(k))
	q.Z = p.Z
	return q
}

func (l Line) String() string {
	return fmt.Sprintf("%g*x + %g*y + %g = 0", l.A, l.B, l.C)
}

////////////////////////////////////////////////////////////////

// Sphere is a ball used for point containment.
type Sphere struct {
	Center Point
	Radius float64
}

func (s Sphere) vec() r3.Vec {
	return toVec(s.Center)
}

func toVec(p Point) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Contains returns true if P lies inside or on the sphere.
func (s Sphere) Contains(p Point) bool {
	return r3.Norm2(r3.Sub(toVec(p), s.vec())) <= s.Radius*s.Radius
}

// ContainsAll returns true if all points lie inside or on the sphere. It returns true when no points are given.
func (s Sphere) ContainsAll(ps ...Point) bool {
	for _, p := range ps {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// Cylinder is an upright cylinder whose base circle lies in the plane z = Base.Center.Z and that extends Height along the z-axis. A negative height extends downwards.
type Cylinder struct {
	Base   Circle
	Height float64
}

// Axis returns the bottom and top center points of the cylinder.
func (c Cylinder) Axis() (Point, Point) {
	return c.Base.Center, c.Base.Center.Add(Point{0.0, 0.0, c.Height})
}

// Contains returns true if P lies inside or on the cylinder.
func (c Cylinder) Contains(p Point) bool {
	bottom, top := c.Axis()
	zmin, zmax := math.Min(bottom.Z, top.Z), math.Max(bottom.Z, top.Z)
	if p.Z < zmin || zmax < p.Z {
		return false
	}
	d := r3.Sub(toVec(p), toVec(bottom))
	d.Z = 0.0
	return r3.Norm2(d) <= c.Base.Radius*c.Base.Radius
}

// ContainsAll returns true if all points lie inside or on the cylinder. It returns true when no points are given.
func (c Cylinder) ContainsAll(ps ...Point) bool {
	for _, p := range ps {
		if !c.Contains(p) {
			return false
		}
	}
	return true
}
