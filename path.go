package geo

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"
)

// ErrEmptyPath is returned when decoding yields no points.
var ErrEmptyPath = errors.New("geo: path has no points")

// Path is an immutable ordered sequence of points, such as a route or a
// region outline.
type Path struct {
	points []Point
}

// NewPath creates a Path from the given points.
func NewPath(points ...Point) Path {
	cp := make([]Point, len(points))
	copy(cp, points)
	return Path{points: cp}
}

// Points returns a copy of the path's points.
func (p Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// Len returns the number of points on the path.
func (p Path) Len() int { return len(p.points) }

// LengthMeters returns the summed point-to-point distance along the path.
func (p Path) LengthMeters() float64 {
	var total float64
	for i := 1; i < len(p.points); i++ {
		total += DistanceInMeters(p.points[i-1], p.points[i])
	}
	return total
}

// Translate returns the path with every point moved by v.
func (p Path) Translate(v Vector) Path {
	cp := make([]Point, len(p.points))
	for i, pt := range p.points {
		cp[i] = pt.Translate(v)
	}
	return Path{points: cp}
}

// EncodePolyline renders the path in the Google encoded polyline format.
func (p Path) EncodePolyline() string {
	coords := make([][]float64, len(p.points))
	for i, pt := range p.points {
		coords[i] = []float64{pt.lat, pt.lon}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePath parses a Google encoded polyline string into a Path.
func DecodePath(encoded string) (Path, error) {
	if encoded == "" {
		return Path{}, ErrEmptyPath
	}
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return Path{}, fmt.Errorf("geo: failed to decode polyline: %w", err)
	}
	points := make([]Point, len(coords))
	for i, c := range coords {
		pt, err := NewPoint(c[0], c[1])
		if err != nil {
			return Path{}, fmt.Errorf("geo: polyline contains invalid coordinates: %w", err)
		}
		points[i] = pt
	}
	if len(points) == 0 {
		return Path{}, ErrEmptyPath
	}
	return Path{points: points}, nil
}
