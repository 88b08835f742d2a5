package ui

import (
	"net/http"
	"strings"

	"jobconnect-client/internal/domain"
)

// ApplicationsHandler backs the applicant's "my applications" page and the
// employer's review screens.
type ApplicationsHandler struct {
	Deps
}

func (h ApplicationsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	var req domain.ApplicationCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid application payload")
		return
	}
	if req.JobID == 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "jobId is required")
		return
	}
	app, err := h.API.Applications.Apply(r.Context(), req)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Application submitted")
	WriteJSON(w, http.StatusOK, app)
}

func (h ApplicationsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/applications/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid application id")
		return
	}
	if err := h.API.Applications.Withdraw(r.Context(), id); err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Application withdrawn")
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (h ApplicationsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	page, size := pageParams(r)
	apps, err := h.API.Applications.Mine(r.Context(), page, size)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

func (h ApplicationsHandler) ForJob(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/applications/job/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}
	apps, err := h.API.Applications.ForJob(r.Context(), id)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

func (h ApplicationsHandler) ForEmployer(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	page, size := pageParams(r)
	apps, err := h.API.Applications.ForEmployer(r.Context(), page, size)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

func (h ApplicationsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/applications/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid application id")
		return
	}
	app, err := h.API.Applications.Get(r.Context(), id)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

func (h ApplicationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/applications/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid application id")
		return
	}
	var req domain.ApplicationStatusUpdate
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid status payload")
		return
	}
	if !req.Status.Valid() {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "unknown status "+string(req.Status))
		return
	}
	app, err := h.API.Applications.UpdateStatus(r.Context(), id, req)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Application marked "+strings.ToLower(string(req.Status)))
	WriteJSON(w, http.StatusOK, app)
}

func (h ApplicationsHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	status := domain.ApplicationStatus(strings.ToUpper(r.URL.Query().Get("status")))
	if !status.Valid() {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "unknown status")
		return
	}
	apps, err := h.API.Applications.ByStatus(r.Context(), status)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}
