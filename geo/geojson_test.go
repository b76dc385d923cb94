package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/tdewolff/test"

	"github.com/tangentkit/tangent"
)

func TestTouchCollection(t *testing.T) {
	c1, c2 := tangent.C(10, 1, 5), tangent.C(0, 0, 3)
	touches, err := tangent.TangentTouchPoints(c1, c2)
	test.Error(t, err)

	fc := TouchCollection(c1, c2, touches)
	test.T(t, len(fc.Features), 2+len(touches))
	for i, c := range []tangent.Circle{c1, c2} {
		f := fc.Features[i]
		test.T(t, f.Properties["kind"], "circle")
		test.T(t, f.Properties["r"], c.Radius)
		_, ok := f.Geometry.(orb.Polygon)
		test.That(t, ok, f.Geometry)
	}

	external := 0
	for i, touch := range touches {
		f := fc.Features[2+i]
		test.T(t, f.Geometry, LineString(touch.A, touch.B))
		test.T(t, f.Properties["a"], touch.Line.A)
		test.T(t, f.Properties["b"], touch.Line.B)
		test.T(t, f.Properties["c"], touch.Line.C)
		if touch.External(c1, c2) {
			external++
			test.T(t, f.Properties["kind"], "external")
		} else {
			test.T(t, f.Properties["kind"], "internal")
		}
	}
	test.T(t, external, 2)
}

func TestTouchCollectionJSON(t *testing.T) {
	c1, c2 := tangent.C(0, 0, 5), tangent.C(10, 0, 5)
	touches, err := tangent.TangentTouchPoints(c1, c2)
	test.Error(t, err)

	b, err := TouchCollection(c1, c2, touches).MarshalJSON()
	test.Error(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(b)
	test.Error(t, err)
	test.T(t, len(fc.Features), 2+3)

	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties.MustString("kind")]++
		if ls, ok := f.Geometry.(orb.LineString); ok {
			a, b, c := f.Properties.MustFloat64("a"), f.Properties.MustFloat64("b"), f.Properties.MustFloat64("c")
			test.That(t, math.Abs(a*a+b*b-1.0) < 1e-12, a, b)
			for _, q := range ls {
				test.That(t, math.Abs(a*q.X()+b*q.Y()+c) < 1e-9, q)
			}
		}
	}
	test.T(t, kinds["circle"], 2)
	test.T(t, kinds["external"], 2)
	test.T(t, kinds["internal"], 1)
}

func TestSegmentCollection(t *testing.T) {
	a := Circle{orb.Point{4.90, 52.37}, 1000.0}
	b := Circle{orb.Point{4.98, 52.36}, 500.0}
	segments, err := TangentSegments(a, b)
	test.Error(t, err)

	fc := SegmentCollection(a, b, segments)
	test.T(t, len(fc.Features), 2+len(segments))
	for i, c := range []Circle{a, b} {
		f := fc.Features[i]
		test.T(t, f.Properties["kind"], "circle")
		poly, ok := f.Geometry.(orb.Polygon)
		test.That(t, ok, f.Geometry)
		test.That(t, poly[0].Closed())
		test.That(t, planar.RingContains(poly[0], c.Center))
	}
	for i, ls := range segments {
		f := fc.Features[2+i]
		test.T(t, f.Properties["kind"], "tangent")
		test.T(t, f.Geometry, ls)
	}

	data, err := fc.MarshalJSON()
	test.Error(t, err)
	fc2, err := geojson.UnmarshalFeatureCollection(data)
	test.Error(t, err)
	test.T(t, len(fc2.Features), len(fc.Features))
}
