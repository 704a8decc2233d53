package restapi

import (
	"encoding/json"
	"net/http"

	"meccz.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusNotFound, "resource not found")
}

// sendError writes a data-less version 2 envelope with the given status
func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, status int, text string) {
	setJSONResponseType(&w)
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(models.NewErrorResponse(status, text, 2))
	if err != nil {
		api.Logger.Error("failed to encode error response", "error", err, "status", status)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
