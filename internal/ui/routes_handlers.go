package ui

import (
	"net/http"

	"jobconnect-client/internal/routes"
)

// RoutesHandler answers navigation questions for the shell: given a path,
// should it render, wait, or go somewhere else.
type RoutesHandler struct {
	Deps
}

func (h RoutesHandler) Decide(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "path query parameter is required")
		return
	}
	snap := h.Sessions.Snapshot()
	WriteJSON(w, http.StatusOK, routes.DecidePath(snap, path))
}

func (h RoutesHandler) Table(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, routes.Table)
}
