package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/workplanner/workplanner/internal/rest"
)

// MinPasswordLength is the shortest credential accepted when setting a new
// password.
const MinPasswordLength = 4

// CredentialStore is the slice of the planner service the auth handler needs:
// reading and replacing the stored credential.
type CredentialStore interface {
	Password() *string
	SetPassword(ctx context.Context, password string)
}

type SessionStatusDTO struct {
	Authenticated bool `json:"authenticated"`
	PasswordSet   bool `json:"passwordSet"`
}

type Handler struct {
	service     Service
	credentials CredentialStore
}

func NewHandler(service Service, credentials CredentialStore) *Handler {
	return &Handler{service: service, credentials: credentials}
}

// Login checks the submitted password and starts a session on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	if !h.service.CheckPassword(body.Password, h.credentials.Password()) {
		h.writeError(w, http.StatusUnauthorized, "Password errata", "")
		return
	}

	token := h.service.StartSession()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.writeStatus(w, true)
}

// Logout invalidates the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		h.service.ClearSession(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// SessionStatus reports whether the request carries a valid session and
// whether a credential has been set.
func (h *Handler) SessionStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	authenticated := false
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		authenticated = h.service.IsAuthenticated(cookie.Value)
	}
	h.writeStatus(w, authenticated)
}

// SetPassword validates and stores a new credential.
func (h *Handler) SetPassword(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Password     string `json:"password"`
		Confirmation string `json:"confirmation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	if len(body.Password) < MinPasswordLength {
		h.writeError(w, http.StatusBadRequest, "La password deve essere di almeno 4 caratteri", "")
		return
	}
	if body.Password != body.Confirmation {
		h.writeError(w, http.StatusBadRequest, "Le password non corrispondono", "")
		return
	}

	h.credentials.SetPassword(r.Context(), body.Password)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeStatus(w http.ResponseWriter, authenticated bool) {
	status := SessionStatusDTO{
		Authenticated: authenticated,
		PasswordSet:   h.credentials.Password() != nil,
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
