package geo

import "math"

// WGS84 reference radii. The planar model only uses them to derive the length
// of one degree along each axis.
const (
	EquatorialRadiusMeters = 6378137.0
	PolarRadiusMeters      = 6356752.3142

	// MetersPerDegreeLat is the length of one degree of latitude, which the
	// planar model treats as constant.
	MetersPerDegreeLat = 2 * math.Pi * PolarRadiusMeters / 360

	// MetersPerDegreeLonAtEquator is the length of one degree of longitude at
	// the equator; away from it the length shrinks by cos(latitude).
	MetersPerDegreeLonAtEquator = 2 * math.Pi * EquatorialRadiusMeters / 360
)

// DegreesLatToMeters converts a latitude span in degrees to meters.
func DegreesLatToMeters(degrees float64) float64 {
	return degrees * MetersPerDegreeLat
}

// MetersToDegreesLat converts a north-south distance in meters to degrees of
// latitude.
func MetersToDegreesLat(meters float64) float64 {
	return meters / MetersPerDegreeLat
}

// DegreesLonToMetersAt converts a longitude span in degrees to meters at the
// given latitude. The conversion degenerates toward the poles, which is an
// accepted limitation of the planar model.
func DegreesLonToMetersAt(degrees, lat float64) float64 {
	return degrees * MetersPerDegreeLonAtEquator * math.Cos(lat*math.Pi/180)
}

// MetersToDegreesLonAt converts an east-west distance in meters to degrees of
// longitude at the given latitude.
func MetersToDegreesLonAt(meters, lat float64) float64 {
	return meters / (MetersPerDegreeLonAtEquator * math.Cos(lat*math.Pi/180))
}

// DistanceInMeters estimates the distance between two points on the planar
// model. The longitude delta takes the shorter way around the globe and is
// scaled at the midpoint latitude of the two points. If both points carry an
// elevation the vertical delta contributes as a third axis; otherwise it is
// treated as zero. The result is always >= 0.
func DistanceInMeters(a, b Point) float64 {
	dLon := math.Abs(a.lon - b.lon)
	if dLon > 180 {
		dLon = 360 - dLon
	}
	dLat := math.Abs(a.lat - b.lat)
	midLat := (a.lat + b.lat) / 2

	x := DegreesLonToMetersAt(dLon, midLat)
	y := DegreesLatToMeters(dLat)

	var z float64
	if ae, aok := a.Elevation(); aok {
		if be, bok := b.Elevation(); bok {
			z = ae - be
		}
	}

	return math.Sqrt(x*x + y*y + z*z)
}
