package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched top to bottom with errors.Is; the first hit wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgValidationFailed},
	{ErrMalformedPayload, http.StatusBadRequest, app.MsgMalformedPayload},
	{store.ErrAccountAlreadyExists, http.StatusBadRequest, app.MsgAccountAlreadyExists},
	{service.ErrInvalidVerificationToken, http.StatusBadRequest, app.MsgInvalidVerificationLink},
	{service.ErrInvalidResetToken, http.StatusBadRequest, app.MsgInvalidResetLink},

	{ErrMissingToken, http.StatusUnauthorized, app.MsgMissingToken},
	{ErrMalformedToken, http.StatusUnauthorized, app.MsgMalformedTokenFormat},
	{crypto.ErrTokenExpired, http.StatusUnauthorized, app.MsgTokenExpired},
	{crypto.ErrTokenMalformed, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrInvalidSubject, http.StatusUnauthorized, app.MsgInvalidSubject},
	{service.ErrAccountDeactivated, http.StatusUnauthorized, app.MsgAccountDeactivated},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthenticated},

	{ErrForbidden, http.StatusForbidden, app.MsgForbidden},

	{store.ErrAccountNotFound, http.StatusNotFound, app.MsgAccountNotFound},
}

// mapError returns the status and message for err. Unknown errors map to 500
// with fallback as the message.
func mapError(err error, fallback string) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeError writes the failure envelope for err. Field errors are attached
// for validation failures; the internal error text only in development mode
// and only for 500 responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)
	status, message := mapError(err, fallback)

	resp := models.Response{
		Success: false,
		Message: message,
		Errors:  validators.FieldErrors(err),
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		if h.development {
			resp.Error = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, resp, status); wErr != nil {
		log.Err(wErr).Msg("error writing response")
	}
}

// writeSuccess writes the success envelope.
func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	resp := models.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
