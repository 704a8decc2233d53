package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"meccz.org/internal/geo"
	"meccz.org/internal/geocoding"
	"meccz.org/internal/logging"
	"meccz.org/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusUnauthorized)

	// version 1 here is kept for clients that match on the old envelope
	err := json.NewEncoder(w).Encode(models.NewErrorResponse(http.StatusUnauthorized, "permission denied", 1))
	if err != nil {
		api.Logger.Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "http_server"))

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusInternalServerError)

	encoderErr := json.NewEncoder(w).Encode(models.NewErrorResponse(http.StatusInternalServerError, "internal server error", 1))
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// resolveErrorResponse maps a location resolution failure to a response.
// Bad input is a 400, an unknown address a 404, a slow geocoder a 504 and a failing one a 502.
// The Resolver has already logged geocoder failures.
func (api *RestAPI) resolveErrorResponse(w http.ResponseWriter, r *http.Request, field string, err error) {
	switch {
	case errors.Is(err, geo.ErrInvalidCoordinate), errors.Is(err, geo.ErrMalformedCoordinates):
		api.validationErrorResponse(w, r, map[string][]string{field: {err.Error()}})
	case errors.Is(err, geocoding.ErrLocationNotFound):
		api.sendNotFound(w, r)
	case errors.Is(err, geocoding.ErrGeocoderUnavailable):
		api.sendError(w, r, http.StatusServiceUnavailable, "geocoding is not available")
	case errors.Is(err, context.DeadlineExceeded) && r.Context().Err() == nil:
		api.sendError(w, r, http.StatusGatewayTimeout, "geocoding timed out")
	case r.Context().Err() != nil:
		api.sendError(w, r, http.StatusInternalServerError, "internal server error")
	default:
		api.sendError(w, r, http.StatusBadGateway, "geocoding service error")
	}
}
