// Package geo provides value types and utilities for working with geographic
// coordinates on a locally-planar model of the Earth. The model treats small
// regions (roughly 200x200 km) as flat and handles longitude wraparound at the
// antimeridian; it is not a geodesic library and does not model the poles.
package geo

import (
	"errors"
	"math"
)

// ErrLatitudeRange is returned when a latitude falls outside [-90, 90].
var ErrLatitudeRange = errors.New("geo: latitude must be in [-90, 90]")

// Point is an immutable geographic position with an optional elevation in
// meters. Longitude is always stored canonicalized into [-180, 180).
type Point struct {
	lat          float64
	lon          float64
	elevation    float64
	hasElevation bool
}

// NewPoint creates a Point. Latitude outside [-90, 90] is rejected; longitude
// is wrapped into [-180, 180) via MapToLon.
func NewPoint(lat, lon float64) (Point, error) {
	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		return Point{}, ErrLatitudeRange
	}
	return Point{lat: lat, lon: MapToLon(lon)}, nil
}

// NewPointUnsafe creates a Point without range validation: latitude is clamped
// via MapToLat and longitude wrapped via MapToLon. Intended for callers that
// have already validated their input or that explicitly want clamping.
func NewPointUnsafe(lat, lon float64) Point {
	return Point{lat: MapToLat(lat), lon: MapToLon(lon)}
}

// Lat returns the latitude in degrees, in [-90, 90].
func (p Point) Lat() float64 { return p.lat }

// Lon returns the longitude in degrees, in [-180, 180).
func (p Point) Lon() float64 { return p.lon }

// Elevation returns the elevation in meters and whether one is set. An absent
// elevation is not the same as an elevation of zero.
func (p Point) Elevation() (float64, bool) { return p.elevation, p.hasElevation }

// WithLat returns a copy of p with the given latitude.
func (p Point) WithLat(lat float64) (Point, error) {
	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		return Point{}, ErrLatitudeRange
	}
	p.lat = lat
	return p, nil
}

// WithLon returns a copy of p with the given longitude, wrapped into
// [-180, 180).
func (p Point) WithLon(lon float64) Point {
	p.lon = MapToLon(lon)
	return p
}

// WithElevation returns a copy of p with the given elevation in meters.
// NaN clears the elevation; it is never stored.
func (p Point) WithElevation(meters float64) Point {
	if math.IsNaN(meters) {
		return p.WithoutElevation()
	}
	p.elevation = meters
	p.hasElevation = true
	return p
}

// WithoutElevation returns a copy of p with no elevation set.
func (p Point) WithoutElevation() Point {
	p.elevation = 0
	p.hasElevation = false
	return p
}

// Translate returns p moved by v: latitude is clamped to [-90, 90], longitude
// wraps through the antimeridian. The vector's elevation delta applies only
// when p already has an elevation.
func (p Point) Translate(v Vector) Point {
	out := Point{
		lat: MapToLat(p.lat + v.northing),
		lon: MapToLon(p.lon + v.easting),
	}
	if p.hasElevation {
		out.elevation = p.elevation + v.elevation
		out.hasElevation = true
	}
	return out
}

// Equal reports whether two points have identical coordinates and elevation.
func (p Point) Equal(o Point) bool {
	return p.lat == o.lat && p.lon == o.lon &&
		p.hasElevation == o.hasElevation && p.elevation == o.elevation
}

// MapToLon folds any finite longitude into [-180, 180). A value of exactly
// 180 maps to -180, so the antimeridian has a single representation.
func MapToLon(v float64) float64 {
	m := math.Mod(v, 360)
	if m >= 180 {
		m -= 360
	} else if m < -180 {
		m += 360
	}
	// Mod can yield -0 for small negative inputs; normalize it away.
	if m == 0 {
		return 0
	}
	return m
}

// MapToLat clamps any latitude into [-90, 90].
func MapToLat(v float64) float64 {
	if v > 90 {
		return 90
	}
	if v < -90 {
		return -90
	}
	return v
}
