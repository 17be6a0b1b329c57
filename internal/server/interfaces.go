package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context)
}
