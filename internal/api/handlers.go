package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"stagetimer/internal/assets"
	"stagetimer/internal/auth"
	"stagetimer/internal/models"
	"stagetimer/internal/settings"
	"stagetimer/internal/timer"
)

// Handlers exposes the service over plain JSON HTTP. The core packages stay
// transport-agnostic; everything wire-shaped lives here.
type Handlers struct {
	registry *timer.Registry
	store    *settings.Store
	sessions *auth.Sessions
	assets   *assets.Manager
	hub      *Hub
}

// NewHandlers wires the handler set.
func NewHandlers(registry *timer.Registry, store *settings.Store, sessions *auth.Sessions, assetMgr *assets.Manager, hub *Hub) *Handlers {
	return &Handlers{
		registry: registry,
		store:    store,
		sessions: sessions,
		assets:   assetMgr,
		hub:      hub,
	}
}

// StatusResponse is the full viewer payload: every timer's projection plus
// the presentation settings the viewer needs to render it.
type StatusResponse struct {
	Timers             map[string]models.TimerStatus `json:"timers"`
	Theme              settings.Theme                `json:"theme"`
	BackgroundFilename string                        `json:"background_filename,omitempty"`
	TimesUpSound       string                        `json:"times_up_sound,omitempty"`
	LowTimeSound       string                        `json:"low_time_sound,omitempty"`
}

func (h *Handlers) statusResponse() StatusResponse {
	doc := h.store.Load()
	return StatusResponse{
		Timers:             h.registry.StatusAll(),
		Theme:              doc.Theme,
		BackgroundFilename: doc.BackgroundFilename,
		TimesUpSound:       doc.TimesUpSound,
		LowTimeSound:       doc.LowTimeSound,
	}
}

// broadcast pushes a fresh snapshot to connected viewers after a mutation.
func (h *Handlers) broadcast() {
	h.hub.Broadcast(h.statusResponse())
}

// TimerStatus handles GET /api/timer_status.
func (h *Handlers) TimerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statusResponse())
}

// ControlTimer handles POST /api/control_timer/{id}.
func (h *Handlers) ControlTimer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req timer.ControlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	snapshot, err := h.registry.Apply(id, req)
	if err != nil {
		switch {
		case errors.Is(err, timer.ErrUnknownTimer):
			writeError(w, http.StatusNotFound, "unknown timer id")
		case errors.Is(err, timer.ErrInvalidAction), errors.Is(err, timer.ErrInvalidParameters):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "control action failed")
		}
		return
	}

	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "action processed",
		"new_state": snapshot,
	})
}

// GetTheme handles GET /api/theme.
func (h *Handlers) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Load().Theme)
}

// SetTheme handles POST /api/theme.
func (h *Handlers) SetTheme(w http.ResponseWriter, r *http.Request) {
	var theme settings.Theme
	if err := json.NewDecoder(r.Body).Decode(&theme); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	stored, err := h.store.SetTheme(theme)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save theme")
		return
	}
	h.broadcast()
	writeJSON(w, http.StatusOK, stored)
}

// Login handles POST /api/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if !h.store.VerifyPIN(req.PIN) {
		writeError(w, http.StatusUnauthorized, "invalid PIN")
		return
	}

	token := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged in"})
}

// Logout handles POST /api/logout.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   auth.SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// ChangePIN handles POST /api/change_pin.
func (h *Handlers) ChangePIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPIN string `json:"current_pin"`
		NewPIN     string `json:"new_pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.NewPIN == "" {
		writeError(w, http.StatusBadRequest, "new PIN must not be empty")
		return
	}
	if !h.store.VerifyPIN(req.CurrentPIN) {
		writeError(w, http.StatusUnauthorized, "current PIN is incorrect")
		return
	}
	if err := h.store.SetPIN(req.NewPIN); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save new PIN")
		return
	}
	log.Info().Msg("admin PIN changed")
	writeJSON(w, http.StatusOK, map[string]string{"message": "PIN updated"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
