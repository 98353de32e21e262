package geo

import (
	"math"
	"time"
)

// speedBands is the piecewise travel-speed profile: shorter trips average
// lower speeds (city streets), longer trips progressively faster roads. Each
// band applies to the portion of the distance between the previous breakpoint
// and UpToMeters; distance beyond the final breakpoint uses the last speed.
var speedBands = []struct {
	UpToMeters float64
	KMH        float64
}{
	{1_000, 15},
	{2_000, 25},
	{3_000, 35},
	{4_000, 45},
	{6_000, 55},
	{10_000, 65},
	{15_000, 70},
	{25_000, 80},
	{50_000, 85},
	{100_000, 90},
}

const maxBandKMH = 90

// EstimatedMinTravelTime estimates the minimum time to travel between two
// points by road. The distance estimate is rounded to the nearest multiple of
// roundToMeters (values < 1 are treated as 1), then consumed band by band
// through the speed profile. The result is rounded to whole seconds.
//
// The computation is pure and allocation-free: no I/O, no lookups beyond the
// static profile table.
func EstimatedMinTravelTime(from, to Point, roundToMeters float64) time.Duration {
	if roundToMeters < 1 {
		roundToMeters = 1
	}
	distance := math.Round(DistanceInMeters(from, to)/roundToMeters) * roundToMeters

	var seconds float64
	prev := 0.0
	for _, band := range speedBands {
		if distance <= prev {
			break
		}
		span := math.Min(distance, band.UpToMeters) - prev
		seconds += span / (band.KMH / 3.6)
		prev = band.UpToMeters
	}
	if distance > prev {
		seconds += (distance - prev) / (maxBandKMH / 3.6)
	}

	return time.Duration(math.Round(seconds)) * time.Second
}
