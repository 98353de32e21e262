package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/geo"
)

func mustPoint(t *testing.T, lat, lon float64) geo.Point {
	t.Helper()
	p, err := geo.NewPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func TestParse_BuildsLeafRegions(t *testing.T) {
	cfg, err := Parse([]byte(`
regions:
  - name: bay
    rectangle:
      south_west: {latitude: 37.2, longitude: -122.6}
      north_east: {latitude: 38.0, longitude: -121.7}
  - name: downtown
    circle:
      center: {latitude: 37.7749, longitude: -122.4194}
      radius_meters: 2000
`))
	require.NoError(t, err)
	require.Len(t, cfg.Regions, 2)

	areas, err := cfg.Build()
	require.NoError(t, err)
	require.Len(t, areas, 2)

	assert.True(t, areas["bay"].ContainsPoint(mustPoint(t, 37.7749, -122.4194)))
	assert.False(t, areas["bay"].ContainsPoint(mustPoint(t, 40, -122)))
	assert.True(t, areas["downtown"].ContainsPoint(mustPoint(t, 37.7749, -122.4194)))
}

func TestParse_BuildsNestedExpressions(t *testing.T) {
	cfg, err := Parse([]byte(`
regions:
  - name: coast-without-harbor
    difference:
      base:
        union:
          - rectangle:
              south_west: {latitude: 0, longitude: 0}
              north_east: {latitude: 10, longitude: 10}
          - rectangle:
              south_west: {latitude: 0, longitude: 10}
              north_east: {latitude: 10, longitude: 20}
      subtract:
        rectangle:
          south_west: {latitude: 4, longitude: 4}
          north_east: {latitude: 6, longitude: 6}
  - name: overlap
    intersection:
      - rectangle:
          south_west: {latitude: 0, longitude: 0}
          north_east: {latitude: 20, longitude: 20}
      - rectangle:
          south_west: {latitude: 10, longitude: 10}
          north_east: {latitude: 30, longitude: 30}
  - name: offshore
    inverse:
      rectangle:
        south_west: {latitude: 0, longitude: 0}
        north_east: {latitude: 10, longitude: 10}
`))
	require.NoError(t, err)

	areas, err := cfg.Build()
	require.NoError(t, err)

	coast := areas["coast-without-harbor"]
	assert.True(t, coast.ContainsPoint(mustPoint(t, 5, 15)), "union half outside the hole")
	assert.False(t, coast.ContainsPoint(mustPoint(t, 5, 5)), "subtracted harbor")

	overlap := areas["overlap"]
	assert.True(t, overlap.ContainsPoint(mustPoint(t, 15, 15)))
	assert.False(t, overlap.ContainsPoint(mustPoint(t, 5, 5)))

	offshore := areas["offshore"]
	assert.True(t, offshore.ContainsPoint(mustPoint(t, 50, 50)))
	assert.False(t, offshore.ContainsPoint(mustPoint(t, 5, 5)))
}

func TestParse_WrappedRectangle(t *testing.T) {
	cfg, err := Parse([]byte(`
regions:
  - name: dateline
    rectangle:
      south_west: {latitude: 0, longitude: 170}
      north_east: {latitude: 10, longitude: -170}
`))
	require.NoError(t, err)

	areas, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, areas["dateline"].ContainsPoint(mustPoint(t, 5, 175)))
	assert.True(t, areas["dateline"].ContainsPoint(mustPoint(t, 5, -175)))
	assert.False(t, areas["dateline"].ContainsPoint(mustPoint(t, 5, 0)))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("regions: {not: [valid"))
	assert.ErrorContains(t, err, "parsing regions")

	cfg, err := Parse([]byte(`
regions:
  - rectangle:
      south_west: {latitude: 0, longitude: 0}
      north_east: {latitude: 10, longitude: 10}
`))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.ErrorContains(t, err, "without a name")

	cfg, err = Parse([]byte("regions:\n  - name: empty\n"))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.ErrorContains(t, err, "is required")

	cfg, err = Parse([]byte(`
regions:
  - name: bad-lat
    rectangle:
      south_west: {latitude: 91, longitude: 0}
      north_east: {latitude: 95, longitude: 10}
`))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.ErrorIs(t, err, geo.ErrLatitudeRange)

	cfg, err = Parse([]byte(`
regions:
  - name: bad-circle
    circle:
      center: {latitude: 0, longitude: 0}
      radius_meters: -5
`))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.ErrorContains(t, err, "reading")
}
