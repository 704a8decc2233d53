package restapi

import (
	"net/http"

	"github.com/twpayne/go-polyline"
	"meccz.org/internal/models"
	"meccz.org/internal/utils"
)

// DefaultPathSegments is used when the segments parameter is absent
const DefaultPathSegments = 64

func (api *RestAPI) pathHandler(w http.ResponseWriter, r *http.Request) {
	origin, ok := api.coordinateFromQuery(w, r)
	if !ok {
		return
	}

	segments, fieldErrors := utils.ParseIntParam(r.URL.Query(), "segments", DefaultPathSegments, nil)
	if len(fieldErrors) == 0 {
		if err := utils.ValidateSegments(segments); err != nil {
			fieldErrors["segments"] = append(fieldErrors["segments"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	points, err := api.Engine.Path(origin, segments)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	encoded := string(polyline.EncodeCoords(coords))

	result, err := api.Engine.Qibla(origin)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.PathEntry{
		Location:    origin,
		Destination: api.Engine.Destination(),
		DistanceKm:  result.DistanceKm,
		Length:      len(encoded),
		Points:      encoded,
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
