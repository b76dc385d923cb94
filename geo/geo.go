// Package geo converts between tangent geometry and geographic data: circles become orb rings and polygons, tangent segments become GeoJSON features, and circles on the earth given in longitude/latitude with a radius in metres are solved in a local UTM projection.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/wroge/wgs84/v2"

	"github.com/tangentkit/tangent"
)

// DefaultSegments is the number of ring vertices used when n is too small.
const DefaultSegments = 64

// Ring returns a closed counter clockwise ring with n vertices on circle c.
func Ring(c tangent.Circle, n int) orb.Ring {
	if n < 3 {
		n = DefaultSegments
	}
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		sintheta, costheta := math.Sincos(2.0 * math.Pi * float64(i) / float64(n))
		ring = append(ring, orb.Point{c.Center.X + c.Radius*costheta, c.Center.Y + c.Radius*sintheta})
	}
	return append(ring, ring[0])
}

// Polygon returns the disc of circle c as a polygon without holes.
func Polygon(c tangent.Circle, n int) orb.Polygon {
	return orb.Polygon{Ring(c, n)}
}

// LineString returns the segment between a and b.
func LineString(a, b tangent.Point) orb.LineString {
	return orb.LineString{{a.X, a.Y}, {b.X, b.Y}}
}

// Circle is a circle on the earth with its center in longitude and latitude (WGS84, degrees) and its radius in metres.
type Circle struct {
	Center orb.Point
	Radius float64
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%g,%g) r=%gm", c.Center.Lon(), c.Center.Lat(), c.Radius)
}

// Projection is a transverse Mercator projection for one UTM zone, with coordinates in metres. Projections are created by UTM, the zero value has no transformation.
type Projection struct {
	zone  int
	south bool

	forward func(float64, float64, float64) (float64, float64, float64)
	inverse func(float64, float64, float64) (float64, float64, float64)
}

// UTM returns the projection of the UTM zone that contains the given longitude and latitude. Distortion is smallest close to the center of the zone.
func UTM(center orb.Point) Projection {
	lon := math.Mod(center.Lon()+180.0, 360.0)
	if lon < 0.0 {
		lon += 360.0
	}
	zone := int(lon/6.0) + 1
	if 60 < zone {
		zone = 60
	}

	p := Projection{zone: zone, south: center.Lat() < 0.0}
	p.forward = wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(p.EPSG()))
	p.inverse = wgs84.Transform(wgs84.EPSG(p.EPSG()), wgs84.EPSG(4326))
	return p
}

// EPSG returns the EPSG code of the projection, ie. 326xx for northern and 327xx for southern zones.
func (p Projection) EPSG() int {
	if p.south {
		return 32700 + p.zone
	}
	return 32600 + p.zone
}

// Zone returns the UTM zone number between 1 and 60.
func (p Projection) Zone() int {
	return p.zone
}

// South returns true for a zone of the southern hemisphere.
func (p Projection) South() bool {
	return p.south
}

func (p Projection) valid() bool {
	return p.forward != nil && p.inverse != nil
}

// Point projects a longitude and latitude to easting and northing.
func (p Projection) Point(q orb.Point) tangent.Point {
	if !p.valid() {
		panic("geo: projection not created by UTM")
	}
	x, y, _ := p.forward(q.Lon(), q.Lat(), 0.0)
	return tangent.Pt(x, y)
}

// Unproject returns the longitude and latitude of an easting and northing.
func (p Projection) Unproject(q tangent.Point) orb.Point {
	if !p.valid() {
		panic("geo: projection not created by UTM")
	}
	lon, lat, _ := p.inverse(q.X, q.Y, 0.0)
	return orb.Point{lon, lat}
}

// Circle projects a geographic circle. The radius is kept in metres.
func (p Projection) Circle(c Circle) tangent.Circle {
	return tangent.Circle{Center: p.Point(c.Center), Radius: c.Radius}
}

// TangentPoints returns the points on c where the lines through p are tangent to it. The tangency is solved in the UTM zone of the circle's center. Errors are as for tangent.TangentPoints.
func TangentPoints(c Circle, p orb.Point) (orb.Point, orb.Point, error) {
	proj := UTM(c.Center)
	tg, err := tangent.TangentPoints(proj.Circle(c), proj.Point(p))
	if err != nil {
		return orb.Point{}, orb.Point{}, fmt.Errorf("%v: %w", c, err)
	}
	return proj.Unproject(tg.T1), proj.Unproject(tg.T2), nil
}

// TangentSegments returns the common tangent segments between two geographic circles, from the touch point on a to the one on b. The tangents are solved in the UTM zone of the midpoint of both centers.
func TangentSegments(a, b Circle) ([]orb.LineString, error) {
	mid := orb.Point{(a.Center.Lon() + b.Center.Lon()) / 2.0, (a.Center.Lat() + b.Center.Lat()) / 2.0}
	proj := UTM(mid)
	touches, err := tangent.TangentTouchPoints(proj.Circle(a), proj.Circle(b))
	if err != nil {
		return nil, fmt.Errorf("%v and %v: %w", a, b, err)
	}

	segments := make([]orb.LineString, 0, len(touches))
	for _, touch := range touches {
		segments = append(segments, orb.LineString{proj.Unproject(touch.A), proj.Unproject(touch.B)})
	}
	return segments, nil
}
