package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"meccz.org/internal/geo"
	"meccz.org/internal/logging"
)

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimConfig configures a NominatimGeocoder
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NominatimGeocoder resolves addresses with the OpenStreetMap Nominatim search API
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

func NewNominatimGeocoder(cfg NominatimConfig, logger *slog.Logger) *NominatimGeocoder {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NominatimGeocoder{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Geocode returns the best match for address.
func (n *NominatimGeocoder) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", address)
	q.Set("limit", "1")
	endpoint := n.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("nominatim: build request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := n.client.Do(req)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("nominatim: execute request: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, n.logger, "nominatim_response_body")

	logging.LogOperation(n.logger, "nominatim_search",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "geocoding"))

	if resp.StatusCode != http.StatusOK {
		return geo.Coordinate{}, fmt.Errorf("nominatim: unexpected status: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return geo.Coordinate{}, fmt.Errorf("nominatim: decode response: %w", err)
	}
	if len(results) == 0 {
		return geo.Coordinate{}, fmt.Errorf("%w: %s", ErrLocationNotFound, address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("nominatim: invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("nominatim: invalid longitude %q: %w", results[0].Lon, err)
	}

	return geo.NewCoordinate(lat, lon)
}
