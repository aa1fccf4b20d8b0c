package server

import "context"

// Server defines the lifecycle of the import API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives
	// and then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done. It returns once the server has
	// shut down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
