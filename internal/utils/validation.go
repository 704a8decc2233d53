package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"meccz.org/internal/geo"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// MaxPathSegments bounds the number of points returned for a great-circle path
const MaxPathSegments = 512

// ValidateQuery validates free-form location text
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("location cannot be empty")
	}

	if len(query) > 200 {
		return errors.New("location too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("location contains invalid characters")
	}

	return nil
}

// ValidateSegments validates the number of segments requested for a path
func ValidateSegments(segments int) error {
	if segments < 1 {
		return errors.New("segments must be at least 1")
	}
	if segments > MaxPathSegments {
		return fmt.Errorf("segments too large (max %d)", MaxPathSegments)
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateLocationParams validates a lat/lon pair with the geo range rules and returns the
// coordinate along with any field errors, keyed by query parameter name.
func ValidateLocationParams(lat, lon float64) (geo.Coordinate, map[string][]string) {
	fieldErrors := make(map[string][]string)

	if err := geo.ValidateLatitude(lat); err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}

	if err := geo.ValidateLongitude(lon); err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}

	if len(fieldErrors) > 0 {
		return geo.Coordinate{}, fieldErrors
	}
	return geo.Coordinate{Lat: lat, Lon: lon}, fieldErrors
}

// ValidateAndSanitizeQuery validates and sanitizes location text
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}
