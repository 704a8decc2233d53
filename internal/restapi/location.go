package restapi

import (
	"context"
	"net/http"

	"meccz.org/internal/geo"
	"meccz.org/internal/utils"
)

// coordinateFromQuery reads the required lat and lon query parameters.
// On failure the 400 response has already been written.
func (api *RestAPI) coordinateFromQuery(w http.ResponseWriter, r *http.Request) (geo.Coordinate, bool) {
	queryParams := r.URL.Query()

	fieldErrors := utils.RequireParams(queryParams, nil, "lat", "lon")
	lat, fieldErrors := utils.ParseFloatParam(queryParams, "lat", fieldErrors)
	lon, fieldErrors := utils.ParseFloatParam(queryParams, "lon", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return geo.Coordinate{}, false
	}

	origin, fieldErrors := utils.ValidateLocationParams(lat, lon)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return geo.Coordinate{}, false
	}
	return origin, true
}

// coordinateFromPath resolves the :location path parameter, which is either
// "lat,lon" or an address. It returns the sanitized text alongside the coordinate.
func (api *RestAPI) coordinateFromPath(w http.ResponseWriter, r *http.Request) (geo.Coordinate, string, bool) {
	query, err := utils.ValidateAndSanitizeQuery(utils.ExtractParam(r, "location"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"location": {err.Error()}})
		return geo.Coordinate{}, "", false
	}

	ctx := r.Context()
	if api.Config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, api.Config.RequestTimeout)
		defer cancel()
	}

	origin, err := api.Resolver.Resolve(ctx, query)
	if err != nil {
		api.resolveErrorResponse(w, r, "location", err)
		return geo.Coordinate{}, "", false
	}
	return origin, query, true
}
