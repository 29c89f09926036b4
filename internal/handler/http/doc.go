// Package http implements the HTTP transport layer of the auth server.
//
// It exposes route wiring, request handlers and the access gate middleware
// (RequireAuth, OptionalAuth, Authorize). Cross-cutting concerns such as
// request tracing, access logging, panic recovery, compression and metrics
// are handled in this package before requests are delegated to the service
// layer.
package http
