package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompassTableBearingsInClockwiseOrder(t *testing.T) {
	engine := NewKaabaEngine()

	table, err := engine.CompassTable(paris)
	require.NoError(t, err)
	require.Len(t, table.Entries, 16)

	expectedNames := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	for i, entry := range table.Entries {
		assert.Equal(t, float64(i)*22.5, entry.Bearing)
		assert.Equal(t, expectedNames[i], entry.Direction)
	}
}

func TestCompassTableExactlyOneOptimal(t *testing.T) {
	engine := NewKaabaEngine()

	for _, origin := range sampleCoordinates {
		table, err := engine.CompassTable(origin)
		require.NoError(t, err)

		optimalCount := 0
		var optimal CompassEntry
		for _, entry := range table.Entries {
			if entry.IsOptimalDirection {
				optimalCount++
				optimal = entry
			}
		}
		require.Equal(t, 1, optimalCount, "origin %v", origin)

		for _, entry := range table.Entries {
			assert.LessOrEqual(t, optimal.AngularDifference, entry.AngularDifference)
			assert.GreaterOrEqual(t, entry.AngularDifference, 0.0)
			assert.LessOrEqual(t, entry.AngularDifference, 180.0)
		}
		assert.Equal(t, optimal, table.Optimal())
	}
}

func TestCompassTableParis(t *testing.T) {
	engine := NewKaabaEngine()

	table, err := engine.CompassTable(paris)
	require.NoError(t, err)

	assert.Equal(t, paris, table.Location)
	assert.InDelta(t, 119.16, table.QiblaBearing, 0.1)
	assert.InDelta(t, 4496, table.DirectDistanceKm, 5)

	optimal := table.Optimal()
	assert.Equal(t, "ESE", optimal.Direction)
	assert.InDelta(t, 6.66, optimal.AngularDifference, 0.01)

	// heading towards the destination must get closer, heading away must not
	assert.Less(t, optimal.ShortPathDistanceKm, table.DirectDistanceKm)
	assert.Greater(t, optimal.LongPathDistanceKm, table.DirectDistanceKm)
}

func TestCompassTablePathBounds(t *testing.T) {
	engine := NewKaabaEngine()

	for _, origin := range sampleCoordinates {
		table, err := engine.CompassTable(origin)
		require.NoError(t, err)

		direct := table.DirectDistanceKm
		for _, entry := range table.Entries {
			sum := entry.ShortPathDistanceKm + entry.LongPathDistanceKm
			assert.GreaterOrEqual(t, sum, 2*SampleDistanceKm-direct-1e-6, "origin %v %s", origin, entry.Direction)

			// each waypoint is exactly one sample distance from the origin
			assert.InDelta(t, direct, entry.ShortPathDistanceKm, SampleDistanceKm+1e-6)
			assert.InDelta(t, direct, entry.LongPathDistanceKm, SampleDistanceKm+1e-6)
		}
	}
}

func TestCompassTableAtDestination(t *testing.T) {
	engine := NewKaabaEngine()

	table, err := engine.CompassTable(Kaaba)
	require.NoError(t, err)

	assert.Equal(t, 0.0, table.DirectDistanceKm)
	assert.Equal(t, 0.0, table.QiblaBearing)
	assert.Equal(t, "N", table.Optimal().Direction)
	for _, entry := range table.Entries {
		assert.InDelta(t, SampleDistanceKm, entry.ShortPathDistanceKm, 1e-6)
		assert.InDelta(t, SampleDistanceKm, entry.LongPathDistanceKm, 1e-6)
	}
}

func TestCompassTableAtNorthPole(t *testing.T) {
	engine := NewKaabaEngine()

	table, err := engine.CompassTable(Coordinate{Lat: 90, Lon: 0})
	require.NoError(t, err)

	optimal := table.Optimal()
	assert.Equal(t, "SE", optimal.Direction)
	assert.InDelta(t, 6629.85, optimal.ShortPathDistanceKm, 0.01)
	assert.InDelta(t, 8621.60, optimal.LongPathDistanceKm, 0.01)

	// each heading lands on its own meridian, so no two entries coincide
	shortPaths := make(map[string]bool)
	for _, entry := range table.Entries {
		shortPaths[fmt.Sprintf("%.1f", entry.ShortPathDistanceKm)] = true
	}
	assert.Len(t, shortPaths, 16)
}

func TestCompassTableTieBreak(t *testing.T) {
	engine := NewKaabaEngine()

	tests := []struct {
		name        string
		trueBearing float64
		expected    string
	}{
		{name: "between N and NNE", trueBearing: 11.25, expected: "N"},
		{name: "between NNW and N", trueBearing: 348.75, expected: "N"},
		{name: "between E and ESE", trueBearing: 101.25, expected: "E"},
		{name: "between SSW and SW", trueBearing: 213.75, expected: "SSW"},
		{name: "exactly SE", trueBearing: 135, expected: "SE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := engine.compassEntries(paris, tt.trueBearing)

			var optimal []string
			for _, entry := range entries {
				if entry.IsOptimalDirection {
					optimal = append(optimal, entry.Direction)
				}
			}
			assert.Equal(t, []string{tt.expected}, optimal)
		})
	}
}

func TestCompassTableInvalidOrigin(t *testing.T) {
	engine := NewKaabaEngine()

	table, err := engine.CompassTable(Coordinate{Lat: 91, Lon: 0})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.Empty(t, table.Entries)
}
