package geo

// Line is an immutable segment between a south-west and a north-east point.
// Construction swaps latitudes if needed so that SouthWest().Lat() <=
// NorthEast().Lat(); longitude order is preserved, which is how a line
// expresses antimeridian wraparound.
type Line struct {
	sw Point
	ne Point
}

// NewLine creates a Line from two points, normalizing latitude order.
func NewLine(sw, ne Point) Line {
	if sw.lat > ne.lat {
		swLat, neLat := ne.lat, sw.lat
		sw, _ = sw.WithLat(swLat)
		ne, _ = ne.WithLat(neLat)
	}
	return Line{sw: sw, ne: ne}
}

// SouthWest returns the southern end point.
func (l Line) SouthWest() Point { return l.sw }

// NorthEast returns the northern end point.
func (l Line) NorthEast() Point { return l.ne }

// Northing returns the latitude span in degrees, always in [0, 180].
func (l Line) Northing() float64 { return l.ne.lat - l.sw.lat }

// Easting returns the eastward longitude span in degrees, always in [0, 360).
// A line whose north-east longitude lies west of its south-west longitude
// crosses the antimeridian, and its easting accounts for the wrap.
func (l Line) Easting() float64 {
	d := l.ne.lon - l.sw.lon
	if d < 0 {
		d += 360
	}
	return d
}

// IsWrapped reports whether the line's longitude span crosses the
// antimeridian.
func (l Line) IsWrapped() bool { return l.sw.lon > l.ne.lon }

// IsWrappedOnLongSide reports whether the line spans half the globe or more
// in longitude, i.e. it takes the long way around.
func (l Line) IsWrappedOnLongSide() bool { return l.Easting() >= 180 }

// Middle returns the midpoint of the line, honoring wraparound in longitude.
func (l Line) Middle() Point {
	return NewPointUnsafe(
		l.sw.lat+l.Northing()/2,
		l.sw.lon+l.Easting()/2,
	)
}

// Translate returns the line moved by v.
func (l Line) Translate(v Vector) Line {
	return NewLine(l.sw.Translate(v), l.ne.Translate(v))
}

// ShortestLine builds the line between a and b that takes the shorter of the
// two possible west-to-east paths around the globe.
func ShortestLine(a, b Point) Line {
	l := NewLine(a, b)
	if l.IsWrappedOnLongSide() {
		return NewLine(b, a)
	}
	return l
}
