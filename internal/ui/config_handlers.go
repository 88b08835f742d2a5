package ui

import (
	"log"
	"net/http"

	"jobconnect-client/internal/config"
)

// ConfigHandler exposes the user config to the settings screen. PUT
// validates, persists atomically, then swaps the live copy; handlers that
// read CfgVal pick the new values up on their next request.
type ConfigHandler struct {
	Deps
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, _ := h.CfgVal.Load().(config.Config)
	WriteJSON(w, http.StatusOK, cfg)
}

func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := decodeJSON(r, &cfg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid config payload")
		return
	}
	config.ApplyDefaults(&cfg)
	if err := config.Validate(cfg); err != nil {
		WriteError(w, r, http.StatusUnprocessableEntity, "invalid_config", err.Error())
		return
	}
	if err := config.SaveAtomic(h.UserCfgPath, cfg); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}

	// Reload through the normal path so env overrides still apply.
	saved, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
		return
	}
	h.CfgVal.Store(saved)
	log.Printf("[config] saved path=%s", h.UserCfgPath)
	h.toast(r, "success", "Settings saved")
	WriteJSON(w, http.StatusOK, saved)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"path": h.UserCfgPath})
}
