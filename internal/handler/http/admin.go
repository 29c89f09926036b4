package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

// setAccountStatus activates or deactivates the account named by the {id}
// path parameter. Admin only.
func (h *Handler) setAccountStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	var req models.AccountStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgAccountStatusFailed)
		return
	}

	account, err := h.services.AuthService.SetAccountActive(r.Context(), accountID, req)
	if err != nil {
		h.writeError(w, r, err, app.MsgAccountStatusFailed)
		return
	}

	logger.FromRequest(r).Info().
		Str("target_account_id", account.ID).
		Bool("is_active", account.IsActive).
		Msg("account status changed by admin")
	h.writeSuccess(w, r, http.StatusOK, app.MsgAccountStatusChanged, models.UserData{User: account.Sanitize()})
}
