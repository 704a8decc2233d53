package restapi

import (
	"net/http"

	"meccz.org/internal/geo"
	"meccz.org/internal/models"
)

func (api *RestAPI) qiblaHandler(w http.ResponseWriter, r *http.Request) {
	origin, ok := api.coordinateFromQuery(w, r)
	if !ok {
		return
	}
	api.sendQibla(w, r, origin, "")
}

func (api *RestAPI) qiblaForLocationHandler(w http.ResponseWriter, r *http.Request) {
	origin, query, ok := api.coordinateFromPath(w, r)
	if !ok {
		return
	}
	api.sendQibla(w, r, origin, query)
}

func (api *RestAPI) sendQibla(w http.ResponseWriter, r *http.Request, origin geo.Coordinate, query string) {
	result, err := api.Engine.Qibla(origin)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewQiblaEntry(origin, api.Engine.Destination(), result, query)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
