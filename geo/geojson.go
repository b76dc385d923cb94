package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tangentkit/tangent"
)

// TouchCollection returns a feature collection with both circles as polygons and a line string for each tangent segment. Segments carry the normalized line equation a*x + b*y + c = 0 in the properties a, b and c, and kind is either external or internal.
func TouchCollection(c1, c2 tangent.Circle, touches []tangent.Touch) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range []tangent.Circle{c1, c2} {
		f := geojson.NewFeature(Polygon(c, DefaultSegments))
		f.Properties["kind"] = "circle"
		f.Properties["x"] = c.Center.X
		f.Properties["y"] = c.Center.Y
		f.Properties["r"] = c.Radius
		fc.Append(f)
	}

	for _, touch := range touches {
		f := geojson.NewFeature(LineString(touch.A, touch.B))
		f.Properties["a"] = touch.Line.A
		f.Properties["b"] = touch.Line.B
		f.Properties["c"] = touch.Line.C
		if touch.External(c1, c2) {
			f.Properties["kind"] = "external"
		} else {
			f.Properties["kind"] = "internal"
		}
		fc.Append(f)
	}
	return fc
}

// SegmentCollection returns a feature collection with the geographic circles as polygons in longitude and latitude, and the tangent segments between them.
func SegmentCollection(a, b Circle, segments []orb.LineString) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range []Circle{a, b} {
		proj := UTM(c.Center)
		ring := Ring(proj.Circle(c), DefaultSegments)
		for i, q := range ring {
			ring[i] = proj.Unproject(tangent.Pt(q.X(), q.Y()))
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["kind"] = "circle"
		f.Properties["radius"] = c.Radius
		fc.Append(f)
	}
	for _, ls := range segments {
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = "tangent"
		fc.Append(f)
	}
	return fc
}
