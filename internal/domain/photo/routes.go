package photo

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns photo router, mounted under /api/fotos
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/subir", h.Upload)
	r.Get("/", h.Gallery)
	r.Get("/stats", h.Stats)

	return r
}
