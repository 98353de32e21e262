package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lon float64) Point {
	t.Helper()
	p, err := NewPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func TestNewLine_SwapsLatitudesOnly(t *testing.T) {
	north := mustPoint(t, 20, 5)
	south := mustPoint(t, 10, 15)

	l := NewLine(north, south)
	assert.Equal(t, 10.0, l.SouthWest().Lat())
	assert.Equal(t, 20.0, l.NorthEast().Lat())
	// Longitude order is preserved: latitudes swap, longitudes stay put.
	assert.Equal(t, 5.0, l.SouthWest().Lon())
	assert.Equal(t, 15.0, l.NorthEast().Lon())
}

func TestLine_Spans(t *testing.T) {
	l := NewLine(mustPoint(t, 10, 20), mustPoint(t, 30, 40))
	assert.Equal(t, 20.0, l.Northing())
	assert.Equal(t, 20.0, l.Easting())
	assert.False(t, l.IsWrapped())
	assert.False(t, l.IsWrappedOnLongSide())
}

func TestLine_EastingWrapsAroundAntimeridian(t *testing.T) {
	l := NewLine(mustPoint(t, 10, 170), mustPoint(t, 20, -170))
	assert.Equal(t, 20.0, l.Easting())
	assert.True(t, l.IsWrapped())
	assert.False(t, l.IsWrappedOnLongSide())

	long := NewLine(mustPoint(t, 10, -170), mustPoint(t, 20, 170))
	assert.Equal(t, 340.0, long.Easting())
	assert.True(t, long.IsWrappedOnLongSide())
}

func TestLine_MiddleHonorsWrap(t *testing.T) {
	l := NewLine(mustPoint(t, 10, 170), mustPoint(t, 20, -170))
	mid := l.Middle()
	assert.Equal(t, 15.0, mid.Lat())
	assert.Equal(t, -180.0, mid.Lon())
}

func TestShortestLine_PrefersShortWayAround(t *testing.T) {
	a := mustPoint(t, 10, -170)
	b := mustPoint(t, 20, 170)

	l := ShortestLine(a, b)
	assert.Equal(t, 20.0, l.Easting(), "should take the 20 degree path across the antimeridian")
	assert.True(t, l.IsWrapped())

	// Points on the same side keep their natural order.
	direct := ShortestLine(mustPoint(t, 0, 10), mustPoint(t, 0, 50))
	assert.Equal(t, 40.0, direct.Easting())
	assert.False(t, direct.IsWrapped())
}

func TestLine_Translate(t *testing.T) {
	l := NewLine(mustPoint(t, 10, 20), mustPoint(t, 30, 40))
	v, err := NewVector(5, -10)
	require.NoError(t, err)

	moved := l.Translate(v)
	assert.Equal(t, 15.0, moved.SouthWest().Lat())
	assert.Equal(t, 10.0, moved.SouthWest().Lon())
	assert.Equal(t, 35.0, moved.NorthEast().Lat())
	assert.Equal(t, 30.0, moved.NorthEast().Lon())
}
