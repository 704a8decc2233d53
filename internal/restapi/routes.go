package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Routes registers every endpoint on a new router
func (api *RestAPI) Routes() *httprouter.Router {
	router := httprouter.New()

	router.Handler(http.MethodGet, "/api/qibla.json", validateAPIKey(api, api.qiblaHandler))
	router.Handler(http.MethodGet, "/api/qibla/:location", validateAPIKey(api, api.qiblaForLocationHandler))
	router.Handler(http.MethodGet, "/api/compass-table.json", validateAPIKey(api, api.compassTableHandler))
	router.Handler(http.MethodGet, "/api/compass-table/:location", validateAPIKey(api, api.compassTableForLocationHandler))
	router.Handler(http.MethodGet, "/api/path.json", validateAPIKey(api, api.pathHandler))
	router.Handler(http.MethodGet, "/api/current-time.json", validateAPIKey(api, api.currentTimeHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)

	return router
}
