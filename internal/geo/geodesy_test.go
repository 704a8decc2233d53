package geo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	paris   = Coordinate{Lat: 48.8566, Lon: 2.3522}
	newYork = Coordinate{Lat: 40.7128, Lon: -74.0060}
	guam    = Coordinate{Lat: 13.4500, Lon: 144.7652}
	sydney  = Coordinate{Lat: -33.8688, Lon: 151.2093}
)

// sampleCoordinates covers both hemispheres, the poles, the antimeridian and the Kaaba itself.
var sampleCoordinates = []Coordinate{
	paris, newYork, guam, sydney, Kaaba,
	{Lat: 90, Lon: 0},
	{Lat: -90, Lon: 0},
	{Lat: 0, Lon: 180},
	{Lat: 0, Lon: -180},
	{Lat: -21.4225, Lon: -140.1738},
	{Lat: 64.1466, Lon: -21.9426},
	{Lat: -54.8019, Lon: -68.3030},
}

func TestDistanceSymmetric(t *testing.T) {
	for _, a := range sampleCoordinates {
		for _, b := range sampleCoordinates {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6, "%v <-> %v", a, b)
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	for _, c := range sampleCoordinates {
		assert.Equal(t, 0.0, Distance(c, c), "%v", c)
	}
}

func TestDistanceBounds(t *testing.T) {
	for _, a := range sampleCoordinates {
		for _, b := range sampleCoordinates {
			d := Distance(a, b)
			assert.False(t, math.IsNaN(d))
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, MaxDistanceKm+1e-9)
		}
	}
}

func TestDistanceAntipodal(t *testing.T) {
	d := Distance(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 0, Lon: 180})
	assert.InDelta(t, 20015.1, d, 0.1)
}

func TestDistanceKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		from     Coordinate
		expected float64
		delta    float64
	}{
		{name: "Paris", from: paris, expected: 4496, delta: 5},
		{name: "New York", from: newYork, expected: 10306, delta: 10},
		{name: "Guam", from: guam, expected: 10957, delta: 10},
		{name: "Kaaba", from: Kaaba, expected: 0, delta: 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.from, Kaaba), tt.delta)
		})
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name      string
		from, to  Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "North direction",
			from:      Coordinate{Lat: 40.0, Lon: -122.0},
			to:        Coordinate{Lat: 41.0, Lon: -122.0},
			expected:  0.0,
			tolerance: 1.0,
		},
		{
			name:      "East direction",
			from:      Coordinate{Lat: 40.0, Lon: -122.0},
			to:        Coordinate{Lat: 40.0, Lon: -121.0},
			expected:  90.0,
			tolerance: 1.0,
		},
		{
			name:      "South direction",
			from:      Coordinate{Lat: 40.0, Lon: -122.0},
			to:        Coordinate{Lat: 39.0, Lon: -122.0},
			expected:  180.0,
			tolerance: 1.0,
		},
		{
			name:      "Paris to Kaaba",
			from:      paris,
			to:        Kaaba,
			expected:  119.16,
			tolerance: 0.1,
		},
		{
			name:      "New York to Kaaba",
			from:      newYork,
			to:        Kaaba,
			expected:  58.5,
			tolerance: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Bearing(tt.from, tt.to), tt.tolerance)
		})
	}
}

func TestBearingRange(t *testing.T) {
	for _, a := range sampleCoordinates {
		for _, b := range sampleCoordinates {
			if a == b {
				continue
			}
			bearing := Bearing(a, b)
			assert.False(t, math.IsNaN(bearing), "%v -> %v", a, b)
			assert.GreaterOrEqual(t, bearing, 0.0)
			assert.Less(t, bearing, 360.0)
		}
	}
}

func TestBearingSamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Bearing(Kaaba, Kaaba))
	assert.Equal(t, 0.0, Bearing(paris, paris))
}

func TestBearingFromPoles(t *testing.T) {
	north := Coordinate{Lat: 90, Lon: 0}
	south := Coordinate{Lat: -90, Lon: 0}

	b := Bearing(north, Kaaba)
	require.False(t, math.IsNaN(b))
	assert.InDelta(t, 140.17, b, 0.01)
	assert.InDelta(t, (90-Kaaba.Lat)*math.Pi/180*EarthRadiusKm, Distance(north, Kaaba), 1e-6)

	b = Bearing(south, Kaaba)
	require.False(t, math.IsNaN(b))
	assert.InDelta(t, (90+Kaaba.Lat)*math.Pi/180*EarthRadiusKm, Distance(south, Kaaba), 1e-6)
}

func TestNormalizeBearing(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
		{-720, 0},
		{-1e-14, 0},
		{359.5, 359.5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v degrees", tt.in), func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeBearing(tt.in), 1e-9)
		})
	}
}

func TestDestinationPoint(t *testing.T) {
	t.Run("travels the requested distance", func(t *testing.T) {
		for _, origin := range []Coordinate{paris, newYork, sydney, {Lat: 0, Lon: 179.9}} {
			for _, point := range compassRose {
				p := DestinationPoint(origin, point.Bearing, SampleDistanceKm)
				require.NoError(t, p.Validate())
				assert.InDelta(t, SampleDistanceKm, Distance(origin, p), 1e-6)
			}
		}
	})

	t.Run("east along the equator", func(t *testing.T) {
		p := DestinationPoint(Coordinate{}, 90, SampleDistanceKm)
		assert.InDelta(t, 0, p.Lat, 1e-9)
		assert.InDelta(t, 8.9932, p.Lon, 1e-4)
	})

	t.Run("wraps across the antimeridian", func(t *testing.T) {
		p := DestinationPoint(Coordinate{Lat: 0, Lon: 179.9}, 90, SampleDistanceKm)
		assert.InDelta(t, -171.1068, p.Lon, 1e-4)
	})

	t.Run("initial bearing is preserved", func(t *testing.T) {
		p := DestinationPoint(paris, 60, 50)
		assert.InDelta(t, 60, Bearing(paris, p), 0.01)
	})

	t.Run("leaves a pole along the meridian of the heading", func(t *testing.T) {
		poles := []Coordinate{
			{Lat: 90, Lon: 0},
			{Lat: 90, Lon: 25},
			{Lat: -90, Lon: 0},
			{Lat: -90, Lon: -170},
		}
		for _, pole := range poles {
			for _, point := range compassRose {
				p := DestinationPoint(pole, point.Bearing, SampleDistanceKm)
				require.NoError(t, p.Validate())
				assert.InDelta(t, SampleDistanceKm, Distance(pole, p), 1e-6)
				assert.InDelta(t, 0, AngularDifference(point.Bearing, Bearing(pole, p)), 1e-6,
					"%v heading %s", pole, point.Name)
			}
		}
	})

	t.Run("pole headings reach distinct meridians", func(t *testing.T) {
		north := Coordinate{Lat: 90, Lon: 0}
		p := DestinationPoint(north, 135, SampleDistanceKm)
		assert.InDelta(t, 81.0068, p.Lat, 1e-4)
		assert.InDelta(t, 45, p.Lon, 1e-9)

		p = DestinationPoint(north, 0, SampleDistanceKm)
		assert.InDelta(t, 180, math.Abs(p.Lon), 1e-9)

		south := Coordinate{Lat: -90, Lon: 0}
		p = DestinationPoint(south, 45, SampleDistanceKm)
		assert.InDelta(t, -81.0068, p.Lat, 1e-4)
		assert.InDelta(t, 45, p.Lon, 1e-9)
	})
}

func TestAngularDifference(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{0, 0, 0},
		{0, 180, 180},
		{10, 350, 20},
		{350, 10, 20},
		{337.5, 11.25, 33.75},
		{90, 270, 180},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v vs %v", tt.a, tt.b), func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngularDifference(tt.a, tt.b), 1e-9)
		})
	}
}
