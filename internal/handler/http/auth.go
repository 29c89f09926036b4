package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// maxBodyBytes caps request bodies of the account endpoints.
const maxBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	result, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", result.Account.ID).Msg("account registered")
	h.writeSuccess(w, r, http.StatusCreated, app.MsgRegistered, models.NewAuthData(result))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgLoggedIn, models.NewAuthData(result))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrUnauthenticated, app.MsgProfileFailed)
		return
	}

	account, err := h.services.AuthService.GetProfile(r.Context(), identity.AccountID)
	if err != nil {
		h.writeError(w, r, err, app.MsgProfileFailed)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", models.UserData{User: account.Sanitize()})
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrUnauthenticated, app.MsgAccountDeleteFailed)
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), identity.AccountID); err != nil {
		h.writeError(w, r, err, app.MsgAccountDeleteFailed)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgAccountDeleted, nil)
}

// session reports whether the caller is authenticated. It runs behind
// OptionalAuth and always answers 200.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	data := models.SessionData{}
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		data.Authenticated = true
		data.User = &identity
	}

	h.writeSuccess(w, r, http.StatusOK, "", data)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgVerificationFailed)
		return
	}

	if err := h.services.AuthService.VerifyEmail(r.Context(), req); err != nil {
		h.writeError(w, r, err, app.MsgVerificationFailed)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgEmailVerified, nil)
}

// forgotPassword answers identically whether or not the email is known.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgPasswordResetFailed)
		return
	}

	if _, err := h.services.AuthService.RequestPasswordReset(r.Context(), req); err != nil {
		h.writeError(w, r, err, app.MsgPasswordResetFailed)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgPasswordResetRequested, nil)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgPasswordResetFailed)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		h.writeError(w, r, err, app.MsgPasswordResetFailed)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgPasswordChanged, nil)
}

// decodeJSON reads a single JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return nil
}
