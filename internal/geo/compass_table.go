package geo

import "math"

// SampleDistanceKm is how far each compass heading is followed before measuring
// the remaining distance to the destination.
const SampleDistanceKm = 1000.0

// CompassEntry compares travelling along one compass point with the true bearing
type CompassEntry struct {
	Direction           string  `json:"direction"`
	Bearing             float64 `json:"bearing"`
	AngularDifference   float64 `json:"angularDifference"`
	ShortPathDistanceKm float64 `json:"shortPathDistanceKm"`
	LongPathDistanceKm  float64 `json:"longPathDistanceKm"`
	IsOptimalDirection  bool    `json:"isOptimalDirection"`
}

// CompassTable holds one CompassEntry per compass point, clockwise from North
type CompassTable struct {
	Location         Coordinate     `json:"location"`
	QiblaBearing     float64        `json:"qiblaBearing"`
	DirectDistanceKm float64        `json:"directDistanceKm"`
	Entries          []CompassEntry `json:"entries"`
}

// Optimal returns the entry flagged as closest to the true bearing
func (t CompassTable) Optimal() CompassEntry {
	for _, entry := range t.Entries {
		if entry.IsOptimalDirection {
			return entry
		}
	}
	return CompassEntry{}
}

// CompassTable builds the 16-point comparison table for origin.
func (e *Engine) CompassTable(origin Coordinate) (CompassTable, error) {
	if err := origin.Validate(); err != nil {
		return CompassTable{}, err
	}

	trueBearing := Bearing(origin, e.destination)

	return CompassTable{
		Location:         origin,
		QiblaBearing:     trueBearing,
		DirectDistanceKm: Distance(origin, e.destination),
		Entries:          e.compassEntries(origin, trueBearing),
	}, nil
}

func (e *Engine) compassEntries(origin Coordinate, trueBearing float64) []CompassEntry {
	entries := make([]CompassEntry, 0, len(compassRose))
	for _, point := range compassRose {
		forward := DestinationPoint(origin, point.Bearing, SampleDistanceKm)
		opposite := DestinationPoint(origin, NormalizeBearing(point.Bearing+180), SampleDistanceKm)

		entries = append(entries, CompassEntry{
			Direction:           point.Name,
			Bearing:             point.Bearing,
			AngularDifference:   AngularDifference(point.Bearing, trueBearing),
			ShortPathDistanceKm: Distance(forward, e.destination),
			LongPathDistanceKm:  Distance(opposite, e.destination),
		})
	}

	markOptimal(entries)
	return entries
}

// markOptimal flags the entry with the smallest angular difference.
// Equal differences keep the earlier entry in clockwise order.
func markOptimal(entries []CompassEntry) {
	best := -1
	minDiff := math.MaxFloat64
	for i, entry := range entries {
		if entry.AngularDifference < minDiff {
			minDiff = entry.AngularDifference
			best = i
		}
	}
	if best >= 0 {
		entries[best].IsOptimalDirection = true
	}
}
