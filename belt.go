package tangent

import (
	"fmt"
	"math"
)

// circlePath returns a closed counter clockwise path around circle c.
func circlePath(c Circle) *Path {
	p := &Path{}
	x, y, r := c.Center.X, c.Center.Y, c.Radius
	p.MoveTo(x+r, y)
	if r == 0.0 {
		return p
	}
	p.ArcTo(r, false, true, x-r, y)
	p.ArcTo(r, false, true, x+r, y)
	p.Close()
	return p
}

func larger(c1, c2 Circle) Circle {
	if c1.Radius < c2.Radius {
		return c2
	}
	return c1
}

// Belt returns the closed counter clockwise outline around two circles formed by their two external common tangents and the outer arcs, ie. the convex hull of both discs. When one circle contains the other, the outline of the larger circle is returned.
func Belt(c1, c2 Circle) (*Path, error) {
	if !c1.valid() || !c2.valid() {
		return nil, fmt.Errorf("%w: %v and %v", ErrDegenerateInput, c1, c2)
	}
	switch Classify(c1, c2) {
	case InternallyTangent, Contained, Concentric:
		return circlePath(larger(c1, c2)), nil
	}
	if c1.Radius == 0.0 && c2.Radius == 0.0 {
		p := &Path{}
		p.MoveTo(c1.Center.X, c1.Center.Y)
		p.LineTo(c2.Center.X, c2.Center.Y)
		p.Close()
		return p, nil
	}

	touches, err := TangentTouchPoints(c1, c2)
	if err != nil {
		return nil, err
	}

	// the external tangent to the left of c1->c2 and the one to the right
	u := c2.Center.Sub(c1.Center)
	var left, right *Touch
	for i, t := range touches {
		if !t.External(c1, c2) {
			continue
		}
		if 0.0 < u.PerpDot(t.A.Sub(c1.Center)) || 0.0 < u.PerpDot(t.B.Sub(c2.Center)) {
			left = &touches[i]
		} else {
			right = &touches[i]
		}
	}
	if left == nil || right == nil {
		return nil, fmt.Errorf("%w: external tangents of %v and %v", ErrNoRealSolution, c1, c2)
	}

	// arc on c2 faces away from c1 and spans 2*phi with cos(phi) = (r1-r2)/d, the arc on c1 spans the rest
	p := &Path{}
	p.MoveTo(right.A.X, right.A.Y)
	p.LineTo(right.B.X, right.B.Y)
	if c2.Radius != 0.0 {
		p.ArcTo(c2.Radius, c1.Radius < c2.Radius, true, left.B.X, left.B.Y)
	}
	p.LineTo(left.A.X, left.A.Y)
	if c1.Radius != 0.0 {
		p.ArcTo(c1.Radius, c2.Radius < c1.Radius, true, right.A.X, right.A.Y)
	}
	p.Close()
	return p, nil
}

// BeltLength returns the length of the outline returned by Belt, ie. the length of a crossed-free belt around two pulleys.
func BeltLength(c1, c2 Circle) (float64, error) {
	if !c1.valid() || !c2.valid() {
		return 0.0, fmt.Errorf("%w: %v and %v", ErrDegenerateInput, c1, c2)
	}
	switch Classify(c1, c2) {
	case InternallyTangent, Contained, Concentric:
		return 2.0 * math.Pi * larger(c1, c2).Radius, nil
	}

	d := c1.Center.Distance(c2.Center)
	dr := c1.Radius - c2.Radius
	phi := math.Acos(clamp(dr/d, -1.0, 1.0))
	return 2.0*math.Sqrt(d*d-dr*dr) + c1.Radius*(2.0*math.Pi-2.0*phi) + c2.Radius*2.0*phi, nil
}
