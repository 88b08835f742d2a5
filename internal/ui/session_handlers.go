package ui

import (
	"net/http"

	"jobconnect-client/internal/domain"
)

// SessionHandler backs the login/register/profile screens.
type SessionHandler struct {
	Deps
}

type sessionView struct {
	State           string              `json:"state"`
	Loading         bool                `json:"loading"`
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *domain.UserSummary `json:"user,omitempty"`
}

func (h SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.Sessions.Snapshot()
	WriteJSON(w, http.StatusOK, sessionView{
		State:           snap.State.String(),
		Loading:         snap.Loading(),
		IsAuthenticated: snap.IsAuthenticated(),
		User:            snap.User,
	})
}

func (h SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     domain.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid login payload")
		return
	}

	res := h.Sessions.Login(r.Context(), req.Email, req.Password, req.Role)
	if !res.Success {
		h.toast(r, "error", res.Error)
	}
	WriteJSON(w, http.StatusOK, res)
}

func (h SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid registration payload")
		return
	}

	res := h.Sessions.Register(r.Context(), req)
	if !res.Success {
		h.toast(r, "error", res.Error)
	}
	WriteJSON(w, http.StatusOK, res)
}

func (h SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout()
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h SessionHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	u, err := h.Sessions.RefreshProfile(r.Context())
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, u)
}

func (h SessionHandler) UpdateApplicantProfile(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	var p domain.ApplicantProfile
	if err := decodeJSON(r, &p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid profile payload")
		return
	}
	u, err := h.Sessions.UpdateApplicantProfile(r.Context(), p)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Profile updated")
	WriteJSON(w, http.StatusOK, u)
}

func (h SessionHandler) UpdateEmployerProfile(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	var p domain.EmployerProfile
	if err := decodeJSON(r, &p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid profile payload")
		return
	}
	u, err := h.Sessions.UpdateEmployerProfile(r.Context(), p)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Profile updated")
	WriteJSON(w, http.StatusOK, u)
}

func (h SessionHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAuth(w, r); !ok {
		return
	}
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := h.Sessions.ChangePassword(r.Context(), req.OldPassword, req.NewPassword); err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Password changed")
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h SessionHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string      `json:"email"`
		Role  domain.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := h.API.Auth.ForgotPassword(r.Context(), req.Email, req.Role); err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h SessionHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := h.API.Auth.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
