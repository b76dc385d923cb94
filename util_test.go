package tangent

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0+1e-12))
	test.That(t, !Equal(1.0, 1.0+1e-6))
	test.That(t, equalRel(1e6, 1e6+1e-4))
	test.That(t, !equalRel(1e6, 1e6+1.0))
	test.That(t, equalRel(1e-12, 1e-12+1e-22))
	test.That(t, !equalRel(1e-12, 2e-12))
	test.That(t, !equalRel(0.0, 1e-10))
	test.That(t, equalRel(0.0, 0.0))
}

func TestTolerance(t *testing.T) {
	test.Float(t, tolerance(), 0.0)
	test.Float(t, tolerance(0.5), 0.5*Epsilon)
	test.Float(t, tolerance(4.0, -100.0), 100.0*Epsilon)
	test.Float(t, tolerance(1e-6, 4e-6), 4e-6*Epsilon)
}

func TestPoint(t *testing.T) {
	p := Pt(3, 4)
	test.That(t, p.Add(Pt(1, 1)).Equals(Pt(4, 5)))
	test.That(t, p.Sub(Pt(1, 1)).Equals(Pt(2, 3)))
	test.That(t, p.Mul(2.0).Equals(Pt(6, 8)))
	test.That(t, p.Div(2.0).Equals(Pt(1.5, 2)))
	test.That(t, p.Neg().Equals(Pt(-3, -4)))
	test.That(t, p.Rot90CW().Equals(Pt(4, -3)))
	test.That(t, p.Rot90CCW().Equals(Pt(-4, 3)))
	test.Float(t, p.Dot(Pt(3, 0)), 9.0)
	test.Float(t, p.PerpDot(Pt(3, 0)), p.Rot90CCW().Dot(Pt(3, 0)))
	test.Float(t, p.Length(), 5.0)
	test.That(t, p.Norm(10.0).Equals(Pt(6, 8)))
	test.That(t, Point{}.Norm(1.0).Equals(Point{}))
	test.That(t, Pt(3e-12, 4e-12).Norm(5.0).Equals(Pt(3, 4)))
	test.That(t, Point{}.Interpolate(p, 0.5).Equals(Pt(1.5, 2.0)))
	test.That(t, Point{}.IsZero())
	test.That(t, !Pt(0, 1e-300).IsZero())
	test.String(t, p.String(), "(3,4)")
	test.String(t, Point{1, 2, 3}.String(), "(1,2,3)")
}

func TestPoint3(t *testing.T) {
	p := Point{1, 2, 3}
	q := Point{4, 6, 15}
	test.That(t, p.Add(q).Equals(Point{5, 8, 18}))
	test.That(t, q.Sub(p).Equals(Point{3, 4, 12}))
	test.Float(t, p.Distance(q), 5.0)
	test.Float(t, p.Distance3(q), 13.0)
	test.That(t, p.Rot90CCW().Equals(Point{-2, 1, 3}))
}
