package user

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
)

const stateCookieName = "oauth_state"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// SpotifyLogin hands the client the consent-page URL. The state nonce is
// pinned in a short-lived cookie and checked on callback.
func (h *Handler) SpotifyLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((5 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"auth_url": h.service.LoginURL(state),
	})
}

func (h *Handler) SpotifyCallback(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != state {
		log.Warn("OAuth state mismatch on Spotify callback")
		http.Error(w, "invalid oauth state", http.StatusBadRequest)
		return
	}

	u, sessionToken, err := h.service.HandleCallback(r.Context(), code)
	if err != nil {
		log.WithError(err).Error("Spotify login failed")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, sessionToken, SessionDuration)
	config.JSON(w, http.StatusOK, u)
}

// RefreshToken re-issues the session JWT while the current one is still valid.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionToken, err := auth.GenerateJWT(claims.UserID, claims.Role, SessionDuration)
	if err != nil {
		log.WithError(err).Error("Failed to re-issue session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, sessionToken, SessionDuration)
	config.JSON(w, http.StatusOK, map[string]string{"message": "token refreshed"})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
