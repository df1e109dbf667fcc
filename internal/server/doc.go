// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle together with the background workers:
// startup, signal handling and graceful shutdown of both.
package server
