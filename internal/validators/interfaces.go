// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the request payloads of the account endpoints.
//
// Every failed rule is reported as a [models.FieldError] with the
// user-facing message from the app package; all failures of one request are
// collected into a single [ValidationError] in field declaration order.
package validators

import "context"

// Validator validates a request model. When fields are given, only those
// fields are checked; an unknown field name yields [ErrUnknownField] and an
// unsupported model [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
