package confirmation

import (
	"github.com/go-chi/chi/v5"
)

// SubmitRoutes returns the router mounted under /api/confirmacion
func (h *Handler) SubmitRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Submit)
	return r
}

// ListRoutes returns the router mounted under /api/confirmaciones
func (h *Handler) ListRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
