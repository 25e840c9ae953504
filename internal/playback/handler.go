package playback

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
	"github.com/tunequiz/tunequiz/internal/quizsession"
)

type Handler struct {
	coordinator *Coordinator
	sessions    *quizsession.Store
}

func NewHandler(coordinator *Coordinator, sessions *quizsession.Store) *Handler {
	return &Handler{
		coordinator: coordinator,
		sessions:    sessions,
	}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*quizsession.Session, string) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, ""
	}

	s, ok := h.sessions.Get(claims.UserID)
	if !ok {
		config.Error(w, http.StatusNotFound, "no active quiz session")
		return nil, ""
	}
	return s, claims.UserID
}

// Play starts the caller's requested artist's top track. Provider failures
// surface as a notice in a 200 body, never as a 5xx.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	s, userID := h.session(w, r)
	if s == nil {
		return
	}

	var req struct {
		Artist string `json:"artist"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Artist) == "" {
		config.Error(w, http.StatusBadRequest, "missing artist name")
		return
	}

	result := h.coordinator.PlayTopTrackForArtist(r.Context(), s, userID, req.Artist)
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Pause(w http.ResponseWriter, r *http.Request) {
	s, userID := h.session(w, r)
	if s == nil {
		return
	}

	result := h.coordinator.PausePlayback(r.Context(), s, userID)
	config.JSON(w, http.StatusOK, result)
}
