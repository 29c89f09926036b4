package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has been shut down.
	RunServer()

	// Shutdown gracefully stops the server, waiting at most until ctx is done
	// for in-flight requests.
	Shutdown(ctx context.Context) error
}
