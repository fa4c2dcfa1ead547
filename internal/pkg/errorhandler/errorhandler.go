// Package errorhandler centralizes the "log it, then answer the client"
// step for request failures so handlers stay focused on control flow.
package errorhandler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/invitewall/invitewall-api/internal/middleware"
	"github.com/invitewall/invitewall-api/internal/pkg/response"
)

// HandleError logs the error with request context and sends the formatted
// error response.
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error) {
	HandleErrorWithDetails(ctx, w, status, code, message, nil, err)
}

// HandleErrorWithDetails is HandleError with extra machine-readable details
// included in both the log event and the response body.
func HandleErrorWithDetails(ctx context.Context, w http.ResponseWriter, status int, code, message string, details map[string]string, err error) {
	event := log.Error().
		Str("request_id", middleware.GetRequestID(ctx)).
		Str("error_code", code).
		Int("status_code", status)

	if err != nil {
		event.Err(err)
	}
	if details != nil {
		event.Interface("error_details", details)
	}

	event.Msg(message)

	response.ErrorWithDetails(w, status, code, message, details)
}

// LogValidationError logs rejected input; the response itself is sent by the
// handler via response.ValidationError.
func LogValidationError(ctx context.Context, fieldErrors map[string]string) {
	log.Warn().
		Str("request_id", middleware.GetRequestID(ctx)).
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")
}
