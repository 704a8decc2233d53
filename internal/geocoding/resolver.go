package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"meccz.org/internal/geo"
	"meccz.org/internal/logging"
)

var (
	// ErrLocationNotFound is returned when the geocoding service has no match for an address
	ErrLocationNotFound = errors.New("location not found")

	// ErrGeocoderUnavailable is returned when an address needs geocoding but no geocoder is configured
	ErrGeocoderUnavailable = errors.New("geocoding is not available")
)

// Geocoder turns a free-form address into a coordinate
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Coordinate, error)
}

// Resolver turns user input into a coordinate. Input that reads as "lat,lon" is used
// directly; anything else is sent to the geocoder.
type Resolver struct {
	geocoder Geocoder
	logger   *slog.Logger
}

// NewResolver creates a Resolver. A nil geocoder limits it to literal coordinates.
func NewResolver(geocoder Geocoder, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{geocoder: geocoder, logger: logger}
}

// Resolve returns the coordinate for input. Out-of-range literal coordinates are rejected
// with geo.ErrInvalidCoordinate and never geocoded.
func (r *Resolver) Resolve(ctx context.Context, input string) (geo.Coordinate, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return geo.Coordinate{}, fmt.Errorf("resolve location: %w", geo.ErrMalformedCoordinates)
	}

	c, err := geo.ParseCoordinates(input)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, geo.ErrMalformedCoordinates) {
		return geo.Coordinate{}, err
	}

	if r.geocoder == nil {
		return geo.Coordinate{}, fmt.Errorf("resolve %q: %w", input, ErrGeocoderUnavailable)
	}

	c, err = r.geocoder.Geocode(ctx, input)
	if err != nil {
		logging.LogError(r.logger, "geocoding failed", err,
			slog.String("address", input),
			slog.String("component", "geocoding"))
		return geo.Coordinate{}, fmt.Errorf("resolve %q: %w", input, err)
	}

	r.logger.Debug("address geocoded",
		slog.String("address", input),
		slog.Float64("lat", c.Lat),
		slog.Float64("lon", c.Lon))
	return c, nil
}

// NormalizeAddress lower-cases an address and collapses its whitespace so equivalent
// spellings share a cache entry.
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
