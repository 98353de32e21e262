package area

import (
	"math"

	"github.com/dpup/geo"
)

// maxLon is the largest representable longitude west of the antimeridian.
// Rectangles cannot express a north-east corner of exactly +180 because
// longitude canonicalizes to [-180, 180), so the eastern half of a split
// wrapped rectangle ends here.
var maxLon = math.Nextafter(180, 0)

// Rectangle is an axis-aligned region between a south-west and a north-east
// corner. A rectangle whose south-west longitude is greater than its
// north-east longitude wraps across the antimeridian. Rectangle is both a
// primitive of the algebra and the bounding-box type for every Area.
type Rectangle struct {
	sw geo.Point
	ne geo.Point
}

// NewRectangle creates a Rectangle, swapping latitudes if needed so the
// south-west corner is south of the north-east corner. Longitude order is
// preserved and may express wraparound.
func NewRectangle(sw, ne geo.Point) Rectangle {
	l := geo.NewLine(sw, ne)
	return Rectangle{sw: l.SouthWest(), ne: l.NorthEast()}
}

// RectangleFromPoint returns the degenerate rectangle covering exactly p.
func RectangleFromPoint(p geo.Point) Rectangle {
	return Rectangle{sw: p, ne: p}
}

// makeRect builds a rectangle from raw coordinates, clamping latitude and
// wrapping longitude.
func makeRect(swLat, swLon, neLat, neLon float64) Rectangle {
	return NewRectangle(geo.NewPointUnsafe(swLat, swLon), geo.NewPointUnsafe(neLat, neLon))
}

// SouthWest returns the south-west corner.
func (r Rectangle) SouthWest() geo.Point { return r.sw }

// NorthEast returns the north-east corner.
func (r Rectangle) NorthEast() geo.Point { return r.ne }

// IsWrapped reports whether the rectangle's longitude span crosses the
// antimeridian.
func (r Rectangle) IsWrapped() bool { return r.sw.Lon() > r.ne.Lon() }

// Northing returns the latitude span in degrees, in [0, 180].
func (r Rectangle) Northing() float64 { return r.ne.Lat() - r.sw.Lat() }

// Easting returns the eastward longitude span in degrees, in [0, 360).
func (r Rectangle) Easting() float64 { return eastDelta(r.sw.Lon(), r.ne.Lon()) }

// Surface returns the rectangle's surface in square degrees.
func (r Rectangle) Surface() float64 { return r.Northing() * r.Easting() }

// Center returns the rectangle's midpoint, honoring wraparound.
func (r Rectangle) Center() geo.Point {
	return geo.NewPointUnsafe(
		r.sw.Lat()+r.Northing()/2,
		r.sw.Lon()+r.Easting()/2,
	)
}

// Overlaps implements Area. Rectangle overlap against another primitive is
// plain axis-aligned interval overlap with wrapped rectangles handled via
// their eastward spans; compound regions answer for themselves.
func (r Rectangle) Overlaps(other Area) bool {
	switch o := other.(type) {
	case Rectangle:
		return r.overlapsRect(o)
	case Circle:
		return r.overlapsRect(o.BoundingBox())
	default:
		return other.Overlaps(r)
	}
}

// Contains implements Area. A rectangle contains a region when it contains
// the region's bounding box.
func (r Rectangle) Contains(other Area) bool {
	return r.containsRect(other.BoundingBox())
}

// ContainsPoint implements Area.
func (r Rectangle) ContainsPoint(p geo.Point) bool {
	return r.containsRect(RectangleFromPoint(p))
}

// BoundingBox implements Area; a rectangle is its own bounding box.
func (r Rectangle) BoundingBox() Rectangle { return r }

// Translate implements Area.
func (r Rectangle) Translate(v geo.Vector) Area { return r.translate(v) }

func (r Rectangle) translate(v geo.Vector) Rectangle {
	return NewRectangle(r.sw.Translate(v), r.ne.Translate(v))
}

// MoveTo implements Area.
func (r Rectangle) MoveTo(origin geo.Point) Area {
	return r.translate(deltaVector(r.sw, origin))
}

// Optimize implements Area; a primitive is already minimal.
func (r Rectangle) Optimize() Area { return r }

// Pixelate implements Area. A non-wrapped rectangle pixelates to itself; a
// wrapped one splits into exactly two non-wrapped halves at the antimeridian.
func (r Rectangle) Pixelate() []Rectangle {
	if !r.IsWrapped() {
		return []Rectangle{r}
	}
	return []Rectangle{
		makeRect(r.sw.Lat(), -180, r.ne.Lat(), r.ne.Lon()),
		makeRect(r.sw.Lat(), r.sw.Lon(), r.ne.Lat(), maxLon),
	}
}

func (r Rectangle) overlapsRect(o Rectangle) bool {
	if r.sw.Lat() > o.ne.Lat() || r.ne.Lat() < o.sw.Lat() {
		return false
	}
	return eastDelta(r.sw.Lon(), o.sw.Lon()) <= r.Easting() ||
		eastDelta(o.sw.Lon(), r.sw.Lon()) <= o.Easting()
}

func (r Rectangle) containsRect(o Rectangle) bool {
	return r.sw.Lat() <= o.sw.Lat() && r.ne.Lat() >= o.ne.Lat() &&
		spanContains(r.sw.Lon(), r.Easting(), o.sw.Lon(), o.Easting())
}

// grow returns the smallest rectangle extending r to also cover o. Three
// candidates are considered: keeping r's west edge and stretching east,
// keeping r's east edge and stretching west, and stretching latitude only.
// Among candidates that cover both rectangles and are wider than r, the one
// with the smallest easting wins; when no candidate qualifies the longitude
// span was already sufficient and only latitude stretches.
func (r Rectangle) grow(o Rectangle) Rectangle {
	swLat := math.Min(r.sw.Lat(), o.sw.Lat())
	neLat := math.Max(r.ne.Lat(), o.ne.Lat())

	latOnly := makeRect(swLat, r.sw.Lon(), neLat, r.ne.Lon())
	candidates := []Rectangle{
		makeRect(swLat, r.sw.Lon(), neLat, o.ne.Lon()),
		makeRect(swLat, o.sw.Lon(), neLat, r.ne.Lon()),
		// Covers the case where o's span swallows r's entirely.
		makeRect(swLat, o.sw.Lon(), neLat, o.ne.Lon()),
	}

	base := r.Easting()
	best := latOnly
	bestEasting := math.Inf(1)
	for _, c := range candidates {
		if !spanContains(c.sw.Lon(), c.Easting(), r.sw.Lon(), base) {
			continue
		}
		if !spanContains(c.sw.Lon(), c.Easting(), o.sw.Lon(), o.Easting()) {
			continue
		}
		if e := c.Easting(); e > base && e < bestEasting {
			best, bestEasting = c, e
		}
	}
	return best
}
