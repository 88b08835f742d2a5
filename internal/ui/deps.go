package ui

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"

	"jobconnect-client/internal/api"
	"jobconnect-client/internal/config"
	"jobconnect-client/internal/domain"
	"jobconnect-client/internal/events"
	"jobconnect-client/internal/notify"
	"jobconnect-client/internal/session"
	"jobconnect-client/internal/store"
)

type Deps struct {
	Sessions *session.Store
	API      *api.Client
	Cache    *store.DB
	Hub      *events.Hub
	Poller   *notify.Poller

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

// requireAuth rejects the request unless a session exists. All role checks
// read the session store, never the persisted credential directly.
func (d Deps) requireAuth(w http.ResponseWriter, r *http.Request) (session.Snapshot, bool) {
	snap := d.Sessions.Snapshot()
	if snap.Loading() {
		WriteError(w, r, http.StatusServiceUnavailable, "session_loading", "session still initializing")
		return snap, false
	}
	if !snap.IsAuthenticated() {
		WriteError(w, r, http.StatusUnauthorized, "not_authenticated", "sign in required")
		return snap, false
	}
	return snap, true
}

func (d Deps) requireRole(w http.ResponseWriter, r *http.Request, role domain.Role) (session.Snapshot, bool) {
	snap, ok := d.requireAuth(w, r)
	if !ok {
		return snap, false
	}
	if snap.Role() != role {
		WriteError(w, r, http.StatusForbidden, "wrong_role", "this action is for "+strings.ToLower(string(role))+"s")
		return snap, false
	}
	return snap, true
}

// toast publishes the transient notification the shell shows after a
// user-initiated action.
func (d Deps) toast(r *http.Request, level, message string) {
	if d.Hub == nil {
		return
	}
	d.Hub.Publish(events.MakeToast(RequestIDFrom(r.Context()), level, message))
}

func (d Deps) toastBackendErr(r *http.Request, err error) {
	var ae *api.Error
	if errors.As(err, &ae) {
		d.toast(r, "error", ae.DisplayMessage())
		return
	}
	d.toast(r, "error", "Cannot reach the server. Check your connection.")
}
