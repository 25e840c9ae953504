package preference

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
)

// UserDirectory resolves the authenticated user's email.
type UserDirectory interface {
	EmailByID(ctx context.Context, id string) (string, error)
}

type Handler struct {
	service   Service
	directory UserDirectory
}

func NewHandler(s Service, directory UserDirectory) *Handler {
	return &Handler{service: s, directory: directory}
}

// UpdateArtists increments play counters for the named artists and returns
// the updated (top-5 capped) preference record.
func (h *Handler) UpdateArtists(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Email   string   `json:"email"`
		Artists []string `json:"artists"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "bad input")
		return
	}
	if req.Email == "" || req.Artists == nil {
		config.Error(w, http.StatusBadRequest, "bad input")
		return
	}

	pref, err := h.service.UpdateArtists(r.Context(), req.Email, req.Artists)
	if err != nil {
		log.WithError(err).Error("Failed to update artist preferences")
		config.Error(w, http.StatusInternalServerError, "failed to update preferences")
		return
	}

	config.JSON(w, http.StatusOK, pref)
}

// TopArtists returns the caller's up-to-5 favorite artists, descending by
// count.
func (h *Handler) TopArtists(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	email, err := h.directory.EmailByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve user email")
		config.Error(w, http.StatusInternalServerError, "failed to load top artists")
		return
	}

	topArtists, err := h.service.TopArtists(r.Context(), email)
	if err != nil {
		log.WithError(err).Error("Failed to load top artists")
		config.Error(w, http.StatusInternalServerError, "failed to load top artists")
		return
	}

	config.JSON(w, http.StatusOK, map[string][]string{"topArtists": topArtists})
}
