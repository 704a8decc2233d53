package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionLabel(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected string
	}{
		{0.0, "N"},
		{45.0, "NE"},
		{90.0, "E"},
		{135.0, "SE"},
		{180.0, "S"},
		{225.0, "SW"},
		{270.0, "W"},
		{315.0, "NW"},
		{359.0, "N"},
		{360.0, "N"},
		{22.0, "N"},
		{23.0, "NE"},
		{67.0, "NE"},
		{68.0, "E"},
		{119.16, "SE"},
		{58.5, "NE"},
		{294.56, "NW"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f degrees", tt.bearing), func(t *testing.T) {
			assert.Equal(t, tt.expected, DirectionLabel(tt.bearing))
		})
	}
}

func TestCompassPointLabel(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected string
	}{
		{0.0, "N"},
		{11.0, "N"},
		{12.0, "NNE"},
		{22.5, "NNE"},
		{58.5, "ENE"},
		{119.16, "ESE"},
		{135.0, "SE"},
		{348.0, "NNW"},
		{349.0, "N"},
		{359.9, "N"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f degrees", tt.bearing), func(t *testing.T) {
			assert.Equal(t, tt.expected, CompassPointLabel(tt.bearing))
		})
	}
}

func TestDirectionLabelBetweenCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinate
		expected string
	}{
		{
			name:     "North direction",
			from:     Coordinate{Lat: 40.0, Lon: -122.0},
			to:       Coordinate{Lat: 41.0, Lon: -122.0},
			expected: "N",
		},
		{
			name:     "West direction",
			from:     Coordinate{Lat: 40.0, Lon: -122.0},
			to:       Coordinate{Lat: 40.0, Lon: -123.0},
			expected: "W",
		},
		{
			name:     "Guam to Kaaba",
			from:     guam,
			to:       Kaaba,
			expected: "NW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DirectionLabel(Bearing(tt.from, tt.to)))
		})
	}
}
