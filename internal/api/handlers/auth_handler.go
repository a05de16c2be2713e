package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avilaj/bookwish-be/internal/auth"
	"github.com/avilaj/bookwish-be/internal/models"
	"github.com/avilaj/bookwish-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login requests and bearer-token extraction.
type AuthHandler struct {
	service services.AuthServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

type contextKey string

const currentUserKey = contextKey("currentUser")

// Login handles user authentication and token issuance. Credentials arrive
// form-encoded; every credential failure yields the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	resp, err := h.service.Login(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn().Str("username", username).Msg("Failed authentication attempt")
			unauthorized(w, "Incorrect username or password")
			return
		}
		log.Error().Err(err).Msg("Login failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RequireUser is a middleware that resolves the Authorization bearer token
// to a user and stores it in the request context. Routes behind it can rely
// on CurrentUser returning a valid identity.
func (h *AuthHandler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "Missing bearer token")
			return
		}

		user, err := h.service.Authenticate(token)
		if err != nil {
			if errors.Is(err, auth.ErrStoreUnavailable) {
				log.Error().Err(err).Msg("User store unavailable during authentication")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			unauthorized(w, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the authenticated user stored by RequireUser.
func CurrentUser(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(currentUserKey).(models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, detail, http.StatusUnauthorized)
}
