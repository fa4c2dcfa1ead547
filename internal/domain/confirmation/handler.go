package confirmation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/invitewall/invitewall-api/internal/pkg/errorhandler"
	"github.com/invitewall/invitewall-api/internal/pkg/ledger"
	"github.com/invitewall/invitewall-api/internal/pkg/response"
	"github.com/invitewall/invitewall-api/internal/pkg/validator"
)

// Handler handles confirmation HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates confirmation handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/confirmacion
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		// Expose each write's outcome so a mirror failure after a
		// successful database insert is visible to the caller.
		details := map[string]string{
			"primary_persisted": strconv.FormatBool(result.PrimaryPersisted),
			"mirror_persisted":  strconv.FormatBool(result.MirrorPersisted),
		}
		code := "STORAGE_ERROR"
		if errors.Is(err, ledger.ErrUnavailable) {
			code = "LEDGER_ERROR"
		}
		errorhandler.HandleErrorWithDetails(r.Context(), w, http.StatusInternalServerError, code, "Error procesando confirmación", details, err)
		return
	}

	response.OK(w, SubmitResponse{
		Success: true,
		Message: result.Message,
	})
}

// List handles GET /api/confirmaciones
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "STORAGE_ERROR", "Error obteniendo confirmaciones", err)
		return
	}

	response.OK(w, resp)
}
