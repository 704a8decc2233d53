package appconf

import (
	"strings"
	"time"
)

// Environment is the operating environment the server runs in
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port           int
	Env            Environment
	ApiKeys        []string
	RateLimit      int           // requests per second per API key
	RequestTimeout time.Duration // upper bound for a single geocoding round-trip
	LogLevel       string

	NominatimURL     string
	UserAgent        string
	GeocodeCachePath string // empty disables the cache
}

// DefaultNominatimURL is the public OpenStreetMap geocoding endpoint
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// DefaultUserAgent identifies this client to the geocoding service
const DefaultUserAgent = "meccz/1.0"

// ParseAPIKeys splits a comma separated list of API keys, dropping blanks
func ParseAPIKeys(flag string) []string {
	var keys []string
	for _, key := range strings.Split(flag, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
