package playback

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/play", h.Play)
	r.Post("/pause", h.Pause)
	return r
}
