package restapi

import (
	"net/http"
	"time"

	"meccz.org/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	timeData := models.NewCurrentTimeModel(time.Now())
	api.sendResponse(w, r, models.NewEntryResponse(timeData))
}
