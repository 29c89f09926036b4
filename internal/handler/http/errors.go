// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the access gate and request decoding. Callers
// can match against them with [errors.Is].
var (
	// ErrMissingToken is returned when the request has no "Authorization"
	// header at all.
	ErrMissingToken = errors.New("missing `Authorization` header")

	// ErrMalformedToken is returned when nothing is left of the
	// "Authorization" header once the "Bearer " prefix is stripped.
	ErrMalformedToken = errors.New("empty token in `Authorization` header")

	// ErrUnauthenticated is returned by Authorize when no identity is
	// attached to the request.
	ErrUnauthenticated = errors.New("request is not authenticated")

	// ErrForbidden is returned by Authorize when the identity's role is not
	// among the allowed roles.
	ErrForbidden = errors.New("role is not allowed")

	// ErrMalformedPayload is returned when the request body is not valid
	// JSON for the expected request model.
	ErrMalformedPayload = errors.New("malformed request payload")

	// ErrGatePanic wraps a panic recovered while authenticating a request.
	ErrGatePanic = errors.New("panic during authentication")
)
