package photo

import (
	"errors"
	"io"
	"net/http"

	"github.com/invitewall/invitewall-api/internal/config"
	"github.com/invitewall/invitewall-api/internal/pkg/errorhandler"
	"github.com/invitewall/invitewall-api/internal/pkg/response"
)

// Handler handles photo HTTP requests
type Handler struct {
	service        *Service
	maxUploadBytes int64
}

// NewHandler creates photo handler
func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = config.DefaultMaxUploadBytes
	}
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// Upload handles POST /api/fotos/subir (multipart: photo, userName, descripcion)
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	// Slack for the multipart framing and text fields on top of the file cap.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "La foto supera el tamaño máximo permitido")
			return
		}
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "No se envió ninguna foto")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "No se pudo leer la foto")
		return
	}

	photo, err := h.service.Upload(r.Context(), &UploadInput{
		FileName:    header.Filename,
		UserName:    r.FormValue("userName"),
		Description: r.FormValue("descripcion"),
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		switch err {
		case ErrNoFile:
			response.BadRequest(w, "No se envió ninguna foto")
		case ErrUserNameRequired:
			response.BadRequest(w, "El nombre del usuario es requerido")
		case ErrFileTooLarge:
			response.Error(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "La foto supera el tamaño máximo permitido")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "STORAGE_ERROR", "Error guardando la foto", err)
		}
		return
	}

	response.OK(w, UploadResponse{
		Success: true,
		Message: "Foto subida exitosamente",
		PhotoID: photo.ID.String(),
	})
}

// Gallery handles GET /api/fotos
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Gallery(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "STORAGE_ERROR", "Error obteniendo fotos", err)
		return
	}

	// The frontend expects a bare array, even when empty.
	if items == nil {
		items = []*GalleryItem{}
	}
	response.OK(w, items)
}

// Stats handles GET /api/fotos/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "STORAGE_ERROR", "Error obteniendo estadísticas", err)
		return
	}

	response.OK(w, stats)
}
