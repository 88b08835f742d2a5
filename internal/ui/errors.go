package ui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"jobconnect-client/internal/api"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeBackendError maps a facade failure onto the local response. Backend
// statuses pass through untouched; transport failures become a 502 with a
// generic message. A 401 still propagates even though the client's hook has
// already dropped the session by the time we get here.
func writeBackendError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *api.Error
	switch {
	case errors.As(err, &ae):
		WriteError(w, r, ae.Status, "backend_error", ae.DisplayMessage())
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to write
	default:
		WriteError(w, r, http.StatusBadGateway, "backend_unreachable", "Cannot reach the server. Check your connection.")
	}
}
