package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/google"
	"github.com/mainakmishra/equinox/pkg/problem"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	googleSvc *google.Service
}

func NewAuthHandler(googleSvc *google.Service) *AuthHandler {
	return &AuthHandler{googleSvc: googleSvc}
}

// Login handles GET /v1/users/{userId}/google/login
// @Summary Start Google account linking
// @Description Redirects to the Google consent page requesting Gmail and Tasks scopes
// @Tags google
// @Param userId path string true "User UUID" format(uuid)
// @Success 302 "Redirect to Google"
// @Failure 400 {object} problem.Problem
// @Failure 503 {object} problem.Problem "Google integration not configured"
// @Router /users/{userId}/google/login [get]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.googleSvc == nil {
		problem.ServiceUnavailable("Google integration is not configured").Write(w)
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	// The callback has no path context, so the state carries both the CSRF
	// nonce and the user being linked
	nonce := google.GenerateState()
	state := nonce + "." + userID.String()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    nonce,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})

	http.Redirect(w, r, h.googleSvc.AuthURL(state), http.StatusFound)
}

// Callback handles GET /v1/google/callback
// @Summary Complete Google account linking
// @Description OAuth2 redirect target; exchanges the code and stores the token
// @Tags google
// @Produce json
// @Param state query string true "Opaque state from the login redirect"
// @Param code query string true "Authorization code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /google/callback [get]
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.googleSvc == nil {
		problem.ServiceUnavailable("Google integration is not configured").Write(w)
		return
	}

	state := r.URL.Query().Get("state")
	nonce, rawUserID, ok := splitState(state)
	if !ok {
		problem.BadRequest("Malformed state").Write(w)
		return
	}

	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value != nonce {
		problem.BadRequest("Invalid state").Write(w)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, MaxAge: -1, Path: "/"})

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		problem.BadRequest("Malformed state").Write(w)
		return
	}

	email, err := h.googleSvc.HandleCallback(r.Context(), userID, r.URL.Query().Get("code"))
	if err != nil {
		problem.InternalError("Failed to link Google account").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "linked",
		"email":  email,
	})
}

// Status handles GET /v1/users/{userId}/google/status
// @Summary Check Google link status
// @Tags google
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} map[string]bool
// @Failure 400 {object} problem.Problem
// @Router /users/{userId}/google/status [get]
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	linked := h.googleSvc.Linked(r.Context(), userID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"linked": linked})
}

// Unlink handles DELETE /v1/users/{userId}/google
// @Summary Unlink the Google account
// @Tags google
// @Param userId path string true "User UUID" format(uuid)
// @Success 204 "Account unlinked"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Router /users/{userId}/google [delete]
func (h *AuthHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	if h.googleSvc == nil {
		problem.ServiceUnavailable("Google integration is not configured").Write(w)
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.googleSvc.Unlink(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No linked Google account").Write(w)
			return
		}
		problem.InternalError("Failed to unlink Google account").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func splitState(state string) (nonce, userID string, ok bool) {
	for i := 0; i < len(state); i++ {
		if state[i] == '.' {
			return state[:i], state[i+1:], true
		}
	}
	return "", "", false
}
