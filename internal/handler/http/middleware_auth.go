// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// RequireAuth is the mandatory access gate.
//
// It reads the "Authorization" header, strips an optional "Bearer " prefix
// and resolves the token through [service.AuthService.Authenticate]. On
// success the resulting [models.Identity] is stored in the request context
// (see [utils.GetIdentityFromContext]) and next runs.
//
// Rejections are answered with 401 and a reason-specific message: missing
// header, empty token, expired token, invalid token, vanished account or
// deactivated account. Unexpected failures, including a panic inside the
// gate, are answered with 500.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.authenticate(r)
		if err != nil {
			h.writeError(w, r, err, app.MsgAuthorizationFailed)
			return
		}

		next.ServeHTTP(w, h.withIdentity(r, identity))
	})
}

// OptionalAuth attaches an identity when the request carries a usable token
// and otherwise lets the request through anonymously. It never rejects.
func (h *Handler) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("optional authentication skipped")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, h.withIdentity(r, identity))
	})
}

// Authorize admits only identities whose role is one of roles. It must run
// after RequireAuth or OptionalAuth: without an identity the request is
// answered with 401, with a foreign role with 403.
func (h *Handler) Authorize(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrUnauthenticated, app.MsgAuthorizationFailed)
				return
			}

			if !identity.HasRole(roles...) {
				h.writeError(w, r, ErrForbidden, app.MsgAuthorizationFailed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// authenticate runs the token checks for r. A panic raised by the service is
// converted into an ErrGatePanic error.
func (h *Handler) authenticate(r *http.Request) (identity models.Identity, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			identity = models.Identity{}
			err = fmt.Errorf("%w: %v", ErrGatePanic, rec)
		}
	}()

	tokenString, err := tokenFromRequest(r)
	if err != nil {
		return models.Identity{}, err
	}

	return h.services.AuthService.Authenticate(r.Context(), tokenString)
}

// withIdentity stores identity in the request context and tags the
// request-scoped logger with the account id.
func (h *Handler) withIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := utils.WithIdentity(r.Context(), identity)
	l := logger.FromRequest(r).WithIdentity(identity)
	return r.WithContext(l.WithContext(ctx))
}

// tokenFromRequest extracts the raw token from the "Authorization" header.
//
// Both "Bearer <token>" and a bare "<token>" are accepted. Header values are
// delivered trimmed, so a header of "Bearer " arrives as "Bearer" and is
// treated as empty.
func tokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}

	tokenString := utils.StripBearer(header)
	if tokenString == "" || tokenString == "Bearer" {
		return "", ErrMalformedToken
	}

	return tokenString, nil
}
