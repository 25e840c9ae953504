package quizsession

import (
	"net/http"

	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) *Session {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil
	}

	s, ok := h.store.Get(claims.UserID)
	if !ok || !s.HasQuiz() {
		config.Error(w, http.StatusNotFound, "no active quiz; generate one first")
		return nil
	}
	return s
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	if s := h.session(w, r); s != nil {
		config.JSON(w, http.StatusOK, s.Snapshot())
	}
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	if s := h.session(w, r); s != nil {
		s.Next()
		config.JSON(w, http.StatusOK, s.Snapshot())
	}
}

func (h *Handler) Prev(w http.ResponseWriter, r *http.Request) {
	if s := h.session(w, r); s != nil {
		s.Prev()
		config.JSON(w, http.StatusOK, s.Snapshot())
	}
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	if s := h.session(w, r); s != nil {
		s.Restart()
		config.JSON(w, http.StatusOK, s.Snapshot())
	}
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h.store.Delete(claims.UserID)
	config.JSON(w, http.StatusOK, map[string]string{"message": "session ended"})
}
