package geo

import "fmt"

// QiblaResult is the bearing and distance from an origin to the engine's destination
type QiblaResult struct {
	Bearing      float64 `json:"bearing"`
	Direction    string  `json:"direction"`
	CompassPoint string  `json:"compassPoint"`
	DistanceKm   float64 `json:"distanceKm"`
}

// Engine computes great-circle bearings and distances towards a fixed destination.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	destination Coordinate
}

// NewEngine returns an Engine aimed at destination.
func NewEngine(destination Coordinate) (*Engine, error) {
	if err := destination.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: destination: %w", err)
	}
	return &Engine{destination: destination}, nil
}

// NewKaabaEngine returns an Engine aimed at the Kaaba
func NewKaabaEngine() *Engine {
	return &Engine{destination: Kaaba}
}

// Destination returns the coordinate every result is measured against
func (e *Engine) Destination() Coordinate {
	return e.destination
}

// Qibla returns the initial bearing and great-circle distance from origin to the destination.
func (e *Engine) Qibla(origin Coordinate) (QiblaResult, error) {
	if err := origin.Validate(); err != nil {
		return QiblaResult{}, err
	}

	bearing := Bearing(origin, e.destination)
	return QiblaResult{
		Bearing:      bearing,
		Direction:    DirectionLabel(bearing),
		CompassPoint: CompassPointLabel(bearing),
		DistanceKm:   Distance(origin, e.destination),
	}, nil
}

// Path returns segments+1 points along the great circle from origin to the destination,
// both endpoints included.
func (e *Engine) Path(origin Coordinate, segments int) ([]Coordinate, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if segments < 1 {
		return nil, fmt.Errorf("path: segments must be positive, got %d", segments)
	}

	bearing := Bearing(origin, e.destination)
	total := Distance(origin, e.destination)

	points := make([]Coordinate, 0, segments+1)
	points = append(points, origin)
	for i := 1; i < segments; i++ {
		points = append(points, DestinationPoint(origin, bearing, total*float64(i)/float64(segments)))
	}
	points = append(points, e.destination)
	return points, nil
}
