// Package server runs the HTTP transport of the go-task-keeper server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
