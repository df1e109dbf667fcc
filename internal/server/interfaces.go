package server

// Server owns the HTTP listener and the background workers of the
// application and ties their lifetimes together.
type Server interface {
	// RunServer serves the API until SIGINT, SIGTERM or SIGQUIT arrives or
	// the listener fails. Workers run for exactly as long as the listener
	// does. A clean shutdown returns nil.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight
	// requests to finish.
	Shutdown()
}
