package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeMeterConversions_RoundTrip(t *testing.T) {
	assert.InDelta(t, 111000, DegreesLatToMeters(1), 1500, "one degree of latitude is about 111km")
	assert.InDelta(t, 1.0, MetersToDegreesLat(DegreesLatToMeters(1)), 1e-12)

	// Longitude shrinks with latitude.
	atEquator := DegreesLonToMetersAt(1, 0)
	at60 := DegreesLonToMetersAt(1, 60)
	assert.InDelta(t, 111319, atEquator, 1)
	assert.InDelta(t, atEquator/2, at60, 1, "cos(60) halves the longitude scale")

	assert.InDelta(t, 1.0, MetersToDegreesLonAt(DegreesLonToMetersAt(1, 52), 52), 1e-12)
}

func TestDistanceInMeters_KnownValue(t *testing.T) {
	p0 := mustPoint(t, 0, 0)
	p1 := mustPoint(t, 0, 1)

	d := DistanceInMeters(p0, p1)
	assert.InDelta(t, 111319, d, 111319*0.01, "one degree of longitude at the equator")
}

func TestDistanceInMeters_SymmetricAndZero(t *testing.T) {
	points := []Point{
		mustPoint(t, 52.0, 4.0),
		mustPoint(t, -33.9, 151.2),
		mustPoint(t, 10, -170),
		mustPoint(t, 10, 170),
	}
	for _, a := range points {
		assert.Equal(t, 0.0, DistanceInMeters(a, a))
		for _, b := range points {
			assert.Equal(t, DistanceInMeters(a, b), DistanceInMeters(b, a))
			assert.GreaterOrEqual(t, DistanceInMeters(a, b), 0.0)
		}
	}
}

func TestDistanceInMeters_TakesShortWayAroundAntimeridian(t *testing.T) {
	west := mustPoint(t, 0, 179)
	east := mustPoint(t, 0, -179)

	// 2 degrees across the antimeridian, not 358 around the globe.
	d := DistanceInMeters(west, east)
	assert.InDelta(t, 2*DegreesLonToMetersAt(1, 0), d, d*0.01)
}

func TestDistanceInMeters_Elevation(t *testing.T) {
	base := mustPoint(t, 45, 7)

	// Vertical-only separation.
	low := base.WithElevation(0)
	high := base.WithElevation(300)
	assert.InDelta(t, 300, DistanceInMeters(low, high), 1e-9)

	// A missing elevation on either side is treated as no vertical delta.
	assert.Equal(t, 0.0, DistanceInMeters(base, high))
}

func TestDistanceInMeters_UsesMidpointLatitude(t *testing.T) {
	a := mustPoint(t, 59.9, 10.0)
	b := mustPoint(t, 60.1, 11.0)

	require.InDelta(t, 60.0, (a.Lat()+b.Lat())/2, 1e-9)
	dLonMeters := DegreesLonToMetersAt(1, 60)
	dLatMeters := DegreesLatToMeters(0.2)
	expected := math.Hypot(dLonMeters, dLatMeters)
	assert.InDelta(t, expected, DistanceInMeters(a, b), expected*1e-9)
}
