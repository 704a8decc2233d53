package models

import "meccz.org/internal/geo"

// QiblaEntry is the API representation of a qibla calculation
type QiblaEntry struct {
	Location    geo.Coordinate `json:"location"`
	Destination geo.Coordinate `json:"destination"`
	// Query is the raw location text when the origin was resolved from a path parameter.
	Query string `json:"query,omitempty"`
	geo.QiblaResult
}

// NewQiblaEntry combines an origin, its destination and the engine result
func NewQiblaEntry(origin, destination geo.Coordinate, result geo.QiblaResult, query string) QiblaEntry {
	return QiblaEntry{
		Location:    origin,
		Destination: destination,
		Query:       query,
		QiblaResult: result,
	}
}

// PathEntry is a great-circle path encoded as a Google polyline
type PathEntry struct {
	Location    geo.Coordinate `json:"location"`
	Destination geo.Coordinate `json:"destination"`
	DistanceKm  float64        `json:"distanceKm"`
	Length      int            `json:"length"`
	Points      string         `json:"points"`
}
