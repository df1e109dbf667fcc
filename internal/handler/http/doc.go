// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every response except the Prometheus exposition is written as a JSON
// envelope carrying the request token, a message, an error text and a result.
// Cross-cutting concerns such as authentication, request tracing, access
// logging, metrics and panic recovery are handled in this package before
// requests are delegated to the service layer.
package http
