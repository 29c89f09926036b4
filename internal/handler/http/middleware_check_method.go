// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// notFound answers unknown routes with the JSON failure envelope instead of
// chi's plain-text default.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgRouteNotFound}, http.StatusNotFound)
}

// methodNotAllowed answers a known route requested with an unsupported
// method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}
