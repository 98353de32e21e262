package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToLon_FoldsIntoRange(t *testing.T) {
	assert.Equal(t, -180.0, MapToLon(180.0), "180 should remap to -180")
	assert.Equal(t, -160.0, MapToLon(200.0))
	assert.Equal(t, 160.0, MapToLon(-200.0))
	assert.Equal(t, -180.0, MapToLon(-180.0))
	assert.Equal(t, 0.0, MapToLon(360.0))
	assert.Equal(t, 0.0, MapToLon(-720.0))
	assert.Equal(t, 20.0, MapToLon(380.0))

	// Any finite input lands in [-180, 180).
	for _, v := range []float64{-1000, -540, -359.5, -0.1, 0, 179.999, 181, 539, 1234.5} {
		got := MapToLon(v)
		assert.GreaterOrEqual(t, got, -180.0, "MapToLon(%v)", v)
		assert.Less(t, got, 180.0, "MapToLon(%v)", v)
	}
}

func TestMapToLat_Clamps(t *testing.T) {
	assert.Equal(t, 90.0, MapToLat(95.0))
	assert.Equal(t, -90.0, MapToLat(-95.0))
	assert.Equal(t, 45.5, MapToLat(45.5))
}

func TestNewPoint_ValidatesLatitude(t *testing.T) {
	_, err := NewPoint(90.0001, 0)
	assert.ErrorIs(t, err, ErrLatitudeRange)

	_, err = NewPoint(-90.0001, 0)
	assert.ErrorIs(t, err, ErrLatitudeRange)

	_, err = NewPoint(math.NaN(), 0)
	assert.ErrorIs(t, err, ErrLatitudeRange)

	p, err := NewPoint(52.0, 4.0)
	require.NoError(t, err)
	assert.Equal(t, 52.0, p.Lat())
	assert.Equal(t, 4.0, p.Lon())
}

func TestNewPoint_CanonicalizesLongitude(t *testing.T) {
	p, err := NewPoint(10, 190)
	require.NoError(t, err)
	assert.Equal(t, -170.0, p.Lon())

	p, err = NewPoint(10, 180)
	require.NoError(t, err)
	assert.Equal(t, -180.0, p.Lon())
}

func TestPoint_Elevation(t *testing.T) {
	p, err := NewPoint(10, 20)
	require.NoError(t, err)

	_, ok := p.Elevation()
	assert.False(t, ok, "elevation should be absent by default")

	withElev := p.WithElevation(120.5)
	elev, ok := withElev.Elevation()
	assert.True(t, ok)
	assert.Equal(t, 120.5, elev)

	// NaN is never stored; it means absent.
	cleared := withElev.WithElevation(math.NaN())
	_, ok = cleared.Elevation()
	assert.False(t, ok)

	// Zero elevation is not the same as absent.
	zero := p.WithElevation(0)
	elev, ok = zero.Elevation()
	assert.True(t, ok)
	assert.Equal(t, 0.0, elev)

	// The original point is unchanged.
	_, ok = p.Elevation()
	assert.False(t, ok)
}

func TestPoint_With(t *testing.T) {
	p, err := NewPoint(10, 20)
	require.NoError(t, err)

	moved, err := p.WithLat(15)
	require.NoError(t, err)
	assert.Equal(t, 15.0, moved.Lat())
	assert.Equal(t, 10.0, p.Lat(), "original point must not change")

	_, err = p.WithLat(91)
	assert.ErrorIs(t, err, ErrLatitudeRange)

	wrapped := p.WithLon(185)
	assert.Equal(t, -175.0, wrapped.Lon())
}

func TestPoint_TranslateWrapsAndClamps(t *testing.T) {
	p, err := NewPoint(85, 175)
	require.NoError(t, err)

	v, err := NewVector(10, 10)
	require.NoError(t, err)

	moved := p.Translate(v)
	assert.Equal(t, 90.0, moved.Lat(), "latitude clamps at the pole")
	assert.Equal(t, -175.0, moved.Lon(), "longitude wraps through the antimeridian")
}

func TestPoint_TranslateElevation(t *testing.T) {
	v, err := NewVectorWithElevation(0, 0, 50)
	require.NoError(t, err)

	p, err := NewPoint(10, 20)
	require.NoError(t, err)

	// No elevation on the point: the delta does not apply.
	moved := p.Translate(v)
	_, ok := moved.Elevation()
	assert.False(t, ok)

	moved = p.WithElevation(100).Translate(v)
	elev, ok := moved.Elevation()
	require.True(t, ok)
	assert.Equal(t, 150.0, elev)
}

func TestPoint_Equal(t *testing.T) {
	a, err := NewPoint(10, 20)
	require.NoError(t, err)
	b, err := NewPoint(10, 20)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.WithElevation(0)), "absent elevation differs from zero")
	assert.False(t, a.Equal(b.WithLon(21)))
}

func TestVector_Validation(t *testing.T) {
	_, err := NewVector(181, 0)
	assert.ErrorIs(t, err, ErrNorthingRange)

	_, err = NewVector(0, 361)
	assert.ErrorIs(t, err, ErrEastingRange)

	v, err := NewVectorWithElevation(-10, 350, -5)
	require.NoError(t, err)
	assert.Equal(t, -10.0, v.Northing())
	assert.Equal(t, 350.0, v.Easting())
	assert.Equal(t, -5.0, v.Elevation())

	r := v.Reverse()
	assert.Equal(t, 10.0, r.Northing())
	assert.Equal(t, -350.0, r.Easting())
	assert.Equal(t, 5.0, r.Elevation())
}
