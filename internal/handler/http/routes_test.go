package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_UnknownPathAndMethod(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, "")

	rr := doRequest(t, router, http.MethodGet, "/api/tasks", "", "")
	assertFailure(t, rr, http.StatusNotFound, app.MsgRouteNotFound)

	rr = doRequest(t, router, http.MethodGet, "/api/auth/login", "", "")
	assertFailure(t, rr, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
}

func TestRoutes_TraceIDOnEveryResponse(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, "")

	rr := doRequest(t, router, http.MethodGet, "/nowhere", "", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_MetricsEndpoint(t *testing.T) {
	auth := &mockAuthService{AuthenticateFunc: authenticateAs("good-token", testIdentity)}
	router := newTestRouter(t, auth, "")

	doRequest(t, router, http.MethodGet, "/api/auth/session", "", "Bearer good-token")
	rr := doRequest(t, router, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `task_keeper_http_requests_total{method="GET",path="/api/auth/session",status="200"} 1`)
	assert.Contains(t, body, "task_keeper_http_request_duration_seconds")
}

func TestRoutes_WithoutMetrics(t *testing.T) {
	h := newTestHandler(&mockAuthService{})
	rr := doRequest(t, h.Init(), http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWithRecover(t *testing.T) {
	t.Run("panic becomes 500", func(t *testing.T) {
		h := newTestHandler(&mockAuthService{})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var m map[string]int
			m["x"] = 1
		})

		rr := httptest.NewRecorder()
		require.NotPanics(t, func() {
			h.withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		})
		assertFailure(t, rr, http.StatusInternalServerError, app.MsgInternalError)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		h := newTestHandler(&mockAuthService{})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.withRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("handler panic through the router", func(t *testing.T) {
		auth := &mockAuthService{
			AuthenticateFunc: authenticateAs("good-token", testIdentity),
			GetProfileFunc: func(context.Context, string) (models.Account, error) {
				panic("unexpected")
			},
		}
		rr := doRequest(t, newTestRouter(t, auth, ""), http.MethodGet, "/api/auth/me", "", "Bearer good-token")
		assertFailure(t, rr, http.StatusInternalServerError, app.MsgInternalError)
	})
}

func TestNewHandler_Config(t *testing.T) {
	cfg := config.StructuredConfig{
		App:    config.App{Environment: config.EnvironmentDevelopment},
		Server: config.Server{RequestTimeout: 3 * time.Second},
	}

	h := NewHandler(&service.Services{}, nil, cfg, logger.Nop())

	assert.True(t, h.development)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.Nil(t, h.metrics)
}
