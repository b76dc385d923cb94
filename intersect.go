package tangent

import (
	"fmt"
	"math"
)

// Intersections returns the points where the circumferences of two circles meet: two points when they intersect, one when they touch and none otherwise. Points are planar with Z set to zero.
// See https://math.stackexchange.com/questions/256100/how-can-i-find-the-points-at-which-two-circles-intersect
func Intersections(c1, c2 Circle) ([]Point, error) {
	if !c1.valid() || !c2.valid() {
		return nil, fmt.Errorf("%w: %v and %v", ErrDegenerateInput, c1, c2)
	} else if concentric(c1, c2) {
		return nil, fmt.Errorf("%w: %v and %v", ErrConcentricCircles, c1, c2)
	}

	rel := Classify(c1, c2)
	if rel == Separate || rel == Contained {
		return nil, nil
	}

	p0, p1 := Pt(c1.Center.X, c1.Center.Y), Pt(c2.Center.X, c2.Center.Y)
	r0, r1 := c1.Radius, c2.Radius
	R2 := distSq(p0, p1)
	k := r0*r0 - r1*r1
	mid := p0.Add(p1).Mul(0.5).Add(p1.Sub(p0).Mul(0.5 * k / R2))
	if rel != Intersecting {
		return []Point{mid}, nil
	}

	c := 0.5 * math.Sqrt(math.Max(0.0, 2.0*(r0*r0+r1*r1)/R2-k*k/(R2*R2)-1.0))
	perp := Point{p1.Y - p0.Y, p0.X - p1.X, 0.0}.Mul(c)
	return []Point{mid.Add(perp), mid.Sub(perp)}, nil
}

// LineIntersections returns the points where line l crosses the circumference of c: two points when it cuts the circle, one when it is tangent and none otherwise.
func LineIntersections(l Line, c Circle) []Point {
	if l.IsDegenerate() || !c.valid() {
		return nil
	}

	l0, l1 := l.Points()
	center := Pt(c.Center.X, c.Center.Y)
	d := l1.Sub(l0).Norm(1.0) // along line direction, anchored in l0, its length is 1
	D := l0.Sub(center).PerpDot(d)
	r2 := c.Radius * c.Radius
	discriminant := r2 - D*D
	if math.Abs(discriminant) <= tolerance(r2, D*D) {
		return []Point{center.Add(Point{D * d.Y, -D * d.X, 0.0})}
	} else if discriminant < 0.0 {
		return nil
	}
	discriminant = math.Sqrt(discriminant)

	ax := D * d.Y
	bx := d.X * discriminant
	if d.Y < 0.0 {
		bx = -bx
	}
	ay := -D * d.X
	by := math.Abs(d.Y) * discriminant
	return []Point{center.Add(Point{ax + bx, ay + by, 0.0}), center.Add(Point{ax - bx, ay - by, 0.0})}
}
