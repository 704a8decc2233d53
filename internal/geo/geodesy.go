package geo

import (
	"math"
)

// EarthRadiusKm is the mean Earth radius used by every spherical formula in this package
const EarthRadiusKm = 6371.0

// MaxDistanceKm is the great-circle distance between two antipodal points
const MaxDistanceKm = math.Pi * EarthRadiusKm

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeBearing folds any angle in degrees into [0, 360)
func NormalizeBearing(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	// -1e-14 + 360 rounds to 360
	if b >= 360 {
		b = 0
	}
	return b
}

// normalizeLongitude folds a longitude in degrees into [-180, 180]
func normalizeLongitude(deg float64) float64 {
	if deg >= -180 && deg <= 180 {
		return deg
	}
	return math.Mod(math.Mod(deg+180, 360)+360, 360) - 180
}

// Distance returns the haversine great-circle distance between a and b in kilometers
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h just outside [0, 1] near antipodes.
	h = math.Max(0, math.Min(1, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return c * EarthRadiusKm
}

// Bearing returns the initial great-circle bearing in degrees [0, 360) from `from` to `to`.
// Identical points have no defined azimuth; 0 is returned for them.
func Bearing(from, to Coordinate) float64 {
	if from == to {
		return 0
	}

	phi1 := toRadians(from.Lat)
	phi2 := toRadians(to.Lat)
	deltaLon := toRadians(to.Lon - from.Lon)

	y := math.Sin(deltaLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLon)

	theta := math.Atan2(y, x)
	if math.IsNaN(theta) {
		return 0
	}
	return NormalizeBearing(toDegrees(theta))
}

// DestinationPoint returns the point reached by travelling distanceKm from origin along the
// great circle that leaves origin at the given bearing.
func DestinationPoint(origin Coordinate, bearing, distanceKm float64) Coordinate {
	delta := distanceKm / EarthRadiusKm
	theta := toRadians(bearing)
	phi1 := toRadians(origin.Lat)
	lambda1 := toRadians(origin.Lon)

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	sinPhi2 = math.Max(-1, math.Min(1, sinPhi2))
	phi2 := math.Asin(sinPhi2)

	var lambda2 float64
	switch origin.Lat {
	case 90:
		// Every heading leaves the north pole due south, along meridian lon + 180 - bearing.
		lambda2 = lambda1 + math.Pi - theta
	case -90:
		lambda2 = lambda1 + theta
	default:
		y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
		x := math.Cos(delta) - math.Sin(phi1)*sinPhi2
		lambda2 = lambda1 + math.Atan2(y, x)
	}

	return Coordinate{
		Lat: toDegrees(phi2),
		Lon: normalizeLongitude(toDegrees(lambda2)),
	}
}

// AngularDifference returns the smaller of the clockwise and counter-clockwise angles
// between two bearings, in [0, 180].
func AngularDifference(a, b float64) float64 {
	diff := math.Abs(NormalizeBearing(a) - NormalizeBearing(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
