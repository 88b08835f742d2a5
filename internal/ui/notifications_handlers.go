package ui

import (
	"net/http"
)

// NotificationsHandler backs the bell dropdown. The unread badge itself is
// pushed over SSE by the poller; these endpoints are for the open panel.
type NotificationsHandler struct {
	Deps
}

func (h NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	ns, err := h.API.Notifications.List(r.Context())
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, ns)
}

func (h NotificationsHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	n, err := h.API.Notifications.UnreadCount(r.Context())
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int64{"count": n})
}

func (h NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/notifications/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid notification id")
		return
	}
	if err := h.API.Notifications.MarkRead(r.Context(), id); err != nil {
		writeBackendError(w, r, err)
		return
	}
	if h.Poller != nil {
		h.Poller.Poke(r.Context())
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (h NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	if err := h.API.Notifications.MarkAllRead(r.Context()); err != nil {
		writeBackendError(w, r, err)
		return
	}
	if h.Poller != nil {
		h.Poller.Poke(r.Context())
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
