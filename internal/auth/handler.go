package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// SessionHeader carries the session token on protected requests.
const SessionHeader = "X-Session-Token"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Status reports whether a PIN gate is active.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	configured, err := h.service.IsConfigured(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := struct {
		PinConfigured bool `json:"pinConfigured"`
	}{PinConfigured: configured}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SetPin configures the initial PIN and unlocks in one step, so first-run
// users are not asked to type the PIN twice.
func (h *Handler) SetPin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SetPin(r.Context(), body.Pin); err != nil {
		switch {
		case errors.Is(err, ErrInvalidPin):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrPinAlreadySet):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	token, err := h.service.Unlock(r.Context(), body.Pin)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeToken(w, http.StatusCreated, token)
}

// ChangePin replaces the PIN after verifying the old one.
func (h *Handler) ChangePin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OldPin string `json:"oldPin"`
		NewPin string `json:"newPin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.ChangePin(r.Context(), body.OldPin, body.NewPin); err != nil {
		switch {
		case errors.Is(err, ErrInvalidPin):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrWrongPin), errors.Is(err, ErrPinNotSet):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unlock verifies the PIN and returns a session token.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.service.Unlock(r.Context(), body.Pin)
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongPin), errors.Is(err, ErrPinNotSet):
			log.Debug("rejected unlock attempt")
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	h.writeToken(w, http.StatusOK, token)
}

// Lock invalidates the caller's session token.
func (h *Handler) Lock(w http.ResponseWriter, r *http.Request) {
	h.service.Lock(r.Header.Get(SessionHeader))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeToken(w http.ResponseWriter, status int, token string) {
	session := struct {
		Token string `json:"token"`
	}{Token: token}

	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(session); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
