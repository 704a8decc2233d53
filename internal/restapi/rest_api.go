package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"meccz.org/internal/app"
	"meccz.org/internal/geo"
	"meccz.org/internal/geocoding"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter.
// It works on a copy of application; missing dependencies fall back to a Kaaba engine,
// a coordinates-only resolver and the default logger.
func NewRestAPI(application *app.Application) *RestAPI {
	deps := *application
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Engine == nil {
		deps.Engine = geo.NewKaabaEngine()
	}
	if deps.Resolver == nil {
		deps.Resolver = geocoding.NewResolver(nil, deps.Logger)
	}

	return &RestAPI{
		Application: &deps,
		rateLimiter: NewRateLimitMiddleware(deps.Config.RateLimit, time.Second),
	}
}

// Handler returns the routes wrapped in the full middleware chain:
// security headers, request logging, rate limiting, then compression.
func (api *RestAPI) Handler() http.Handler {
	var handler http.Handler = api.Routes()
	handler = CompressionMiddleware(handler)
	handler = api.rateLimiter.Handler(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = api.WithSecurityHeaders(handler)
	return handler
}

// Close stops background work owned by the API
func (api *RestAPI) Close() {
	api.rateLimiter.Stop()
}
