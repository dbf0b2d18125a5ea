package resp

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Message string `json:"message"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError Ошибка в том же формате, что ждет пульт ведущего: {"message": "..."}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, errorResponse{Message: message})
}
