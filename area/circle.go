package area

import (
	"errors"
	"math"

	"github.com/dpup/geo"
)

// ErrRadiusRange is returned when a circle radius is not strictly positive.
var ErrRadiusRange = errors.New("area: radius must be greater than zero")

// Circle is a primitive region defined by a center point and a radius in
// meters. Like all primitives its boolean operations reduce to its bounding
// box, so a Circle behaves as the smallest rectangle covering it; the radius
// is retained for callers that need the exact shape.
type Circle struct {
	center geo.Point
	radius float64
}

// NewCircle creates a Circle. The radius must be > 0.
func NewCircle(center geo.Point, radiusMeters float64) (Circle, error) {
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) {
		return Circle{}, ErrRadiusRange
	}
	return Circle{center: center, radius: radiusMeters}, nil
}

// Center returns the circle's center.
func (c Circle) Center() geo.Point { return c.center }

// RadiusMeters returns the circle's radius in meters.
func (c Circle) RadiusMeters() float64 { return c.radius }

// Overlaps implements Area.
func (c Circle) Overlaps(other Area) bool { return c.BoundingBox().Overlaps(other) }

// Contains implements Area.
func (c Circle) Contains(other Area) bool { return c.BoundingBox().Contains(other) }

// ContainsPoint implements Area.
func (c Circle) ContainsPoint(p geo.Point) bool { return c.BoundingBox().ContainsPoint(p) }

// BoundingBox implements Area. The box spans the radius converted to degrees
// at the center latitude; near the poles the longitude span saturates, which
// is an accepted limitation of the planar model.
func (c Circle) BoundingBox() Rectangle {
	dLat := geo.MetersToDegreesLat(c.radius)
	dLon := geo.MetersToDegreesLonAt(c.radius, c.center.Lat())
	if dLon >= 180 || math.IsNaN(dLon) || dLon < 0 {
		dLon = 180 - 1e-9
	}
	return makeRect(
		c.center.Lat()-dLat, c.center.Lon()-dLon,
		c.center.Lat()+dLat, c.center.Lon()+dLon,
	)
}

// Translate implements Area.
func (c Circle) Translate(v geo.Vector) Area {
	return Circle{center: c.center.Translate(v), radius: c.radius}
}

// MoveTo implements Area.
func (c Circle) MoveTo(origin geo.Point) Area {
	return c.Translate(moveTo(c, origin))
}

// Optimize implements Area; a primitive is already minimal.
func (c Circle) Optimize() Area { return c }

// Pixelate implements Area.
func (c Circle) Pixelate() []Rectangle { return c.BoundingBox().Pixelate() }
