package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"edurev/backend/app/dto"
	"edurev/backend/app/services"
	"edurev/backend/global"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.Response{Success: false, Message: msg})
}

// writeServiceError reports classified errors as-is and hides everything else
// behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var se *services.Error
	if errors.As(err, &se) {
		writeJSONError(w, se.Kind.Status(), se.Message)
		return
	}
	global.Logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	writeJSONError(w, http.StatusInternalServerError, services.ErrInternal.Message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
