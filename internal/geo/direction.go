package geo

import "math"

// CompassPointSpacing is the angle between two neighbouring points of the 16-wind rose
const CompassPointSpacing = 22.5

// compassPoint is one of the 16 named headings of the compass rose
type compassPoint struct {
	Name    string
	Bearing float64
}

// compassRose is ordered clockwise from North; the order is the tie-break order for the table.
var compassRose = [16]compassPoint{
	{"N", 0.0},
	{"NNE", 22.5},
	{"NE", 45.0},
	{"ENE", 67.5},
	{"E", 90.0},
	{"ESE", 112.5},
	{"SE", 135.0},
	{"SSE", 157.5},
	{"S", 180.0},
	{"SSW", 202.5},
	{"SW", 225.0},
	{"WSW", 247.5},
	{"W", 270.0},
	{"WNW", 292.5},
	{"NW", 315.0},
	{"NNW", 337.5},
}

var eightWinds = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// DirectionLabel converts a bearing to the nearest 8-point compass direction (45° sectors)
func DirectionLabel(bearing float64) string {
	index := int(math.Round(NormalizeBearing(bearing)/45.0)) % 8
	return eightWinds[index]
}

// CompassPointLabel converts a bearing to the nearest of the 16 compass points.
// Sectors are 22.5° wide and centered on each point.
func CompassPointLabel(bearing float64) string {
	index := int(math.Round(NormalizeBearing(bearing)/CompassPointSpacing)) % 16
	return compassRose[index].Name
}
