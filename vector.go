package geo

import "errors"

// Vector construction errors.
var (
	ErrNorthingRange = errors.New("geo: northing must be in [-180, 180]")
	ErrEastingRange  = errors.New("geo: easting must be in [-360, 360]")
)

// Vector is an immutable translation in degrees: northing moves latitude,
// easting moves longitude, elevation is a delta in meters. A Vector is a
// displacement, not a position.
type Vector struct {
	northing  float64
	easting   float64
	elevation float64
}

// NewVector creates a Vector with no elevation delta.
func NewVector(northing, easting float64) (Vector, error) {
	return NewVectorWithElevation(northing, easting, 0)
}

// NewVectorWithElevation creates a Vector with an elevation delta in meters.
func NewVectorWithElevation(northing, easting, elevation float64) (Vector, error) {
	if northing < -180 || northing > 180 {
		return Vector{}, ErrNorthingRange
	}
	if easting < -360 || easting > 360 {
		return Vector{}, ErrEastingRange
	}
	return Vector{northing: northing, easting: easting, elevation: elevation}, nil
}

// Northing returns the latitude displacement in degrees.
func (v Vector) Northing() float64 { return v.northing }

// Easting returns the longitude displacement in degrees.
func (v Vector) Easting() float64 { return v.easting }

// Elevation returns the elevation delta in meters.
func (v Vector) Elevation() float64 { return v.elevation }

// Reverse returns the vector pointing the opposite way.
func (v Vector) Reverse() Vector {
	return Vector{northing: -v.northing, easting: -v.easting, elevation: -v.elevation}
}
