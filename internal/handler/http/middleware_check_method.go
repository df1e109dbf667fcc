// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered as the router's NotFound handler so that unknown
// paths are answered with a 404 envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "Route not found", http.StatusNotFound, nil)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler
// for paths that exist under a different method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "Method not allowed", http.StatusMethodNotAllowed, nil)
}
