package learningplan_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillshare-backend/internal/custom_errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrLearningPlanNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "learning plan not found")
	default:
		writeError(w, http.StatusInternalServerError, "InternalError", "internal server error")
	}
}
