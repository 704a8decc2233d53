package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCoordinate is returned when a latitude or longitude is outside its valid range
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrMalformedCoordinates is returned when text cannot be read as a "lat,lon" pair
	ErrMalformedCoordinates = errors.New("expected format: latitude,longitude")
)

// Coordinate is a point on the Earth's surface in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Kaaba is the default destination for every calculation
var Kaaba = Coordinate{Lat: 21.4225, Lon: 39.8262}

// NewCoordinate validates lat and lon and returns the resulting Coordinate
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate reports ErrInvalidCoordinate when either component is out of range or not a number.
func (c Coordinate) Validate() error {
	if err := ValidateLatitude(c.Lat); err != nil {
		return err
	}
	return ValidateLongitude(c.Lon)
}

// ValidateLatitude reports ErrInvalidCoordinate unless lat is within [-90, 90].
func ValidateLatitude(lat float64) error {
	// NaN fails both comparisons, so the checks are written as "not inside".
	if !(lat >= -90.0 && lat <= 90.0) {
		return fmt.Errorf("%w: latitude must be between -90 and 90, got %v", ErrInvalidCoordinate, lat)
	}
	return nil
}

// ValidateLongitude reports ErrInvalidCoordinate unless lon is within [-180, 180].
func ValidateLongitude(lon float64) error {
	if !(lon >= -180.0 && lon <= 180.0) {
		return fmt.Errorf("%w: longitude must be between -180 and 180, got %v", ErrInvalidCoordinate, lon)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// ParseCoordinates reads a "lat,lon" string such as "48.8566, 2.3522".
func ParseCoordinates(input string) (Coordinate, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return Coordinate{}, ErrMalformedCoordinates
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: latitude %q: %v", ErrMalformedCoordinates, strings.TrimSpace(parts[0]), err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: longitude %q: %v", ErrMalformedCoordinates, strings.TrimSpace(parts[1]), err)
	}

	return NewCoordinate(lat, lon)
}
