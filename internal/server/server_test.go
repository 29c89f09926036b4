package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/handler"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	t.Run("http configured", func(t *testing.T) {
		s, err := NewServer(handlers, cfg.Server, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("no address", func(t *testing.T) {
		s, err := NewServer(handlers, config.Server{}, logger.Nop())
		require.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("no handlers", func(t *testing.T) {
		_, err := NewServer(nil, cfg.Server, logger.Nop())
		require.ErrorIs(t, err, errNoServersAreCreated)
	})
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s := &server{
		httpServer: newHTTPServer(mux, "127.0.0.1:0", logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), ln.Addr().String(), logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())
	assert.Error(t, err)
}

func TestServer_RunWithoutHTTP(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
	assert.NoError(t, s.Shutdown(context.Background()))
}
