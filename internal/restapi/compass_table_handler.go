package restapi

import (
	"net/http"

	"meccz.org/internal/geo"
	"meccz.org/internal/models"
)

func (api *RestAPI) compassTableHandler(w http.ResponseWriter, r *http.Request) {
	origin, ok := api.coordinateFromQuery(w, r)
	if !ok {
		return
	}
	api.sendCompassTable(w, r, origin)
}

func (api *RestAPI) compassTableForLocationHandler(w http.ResponseWriter, r *http.Request) {
	origin, _, ok := api.coordinateFromPath(w, r)
	if !ok {
		return
	}
	api.sendCompassTable(w, r, origin)
}

func (api *RestAPI) sendCompassTable(w http.ResponseWriter, r *http.Request, origin geo.Coordinate) {
	table, err := api.Engine.CompassTable(origin)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(table))
}
