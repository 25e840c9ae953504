package quizsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetSession)
	r.Post("/next", h.Next)
	r.Post("/prev", h.Prev)
	r.Post("/restart", h.Restart)
	r.Delete("/", h.EndSession)
	return r
}
