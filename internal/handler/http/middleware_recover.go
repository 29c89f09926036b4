package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// withRecover turns a panic in any downstream handler into a logged 500
// response so one broken request never takes the process down.
// http.ErrAbortHandler is re-raised to keep its abort semantics.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			h.writeError(w, r, fmt.Errorf("panic: %v", rec), app.MsgInternalError)
		}()

		next.ServeHTTP(w, r)
	})
}
