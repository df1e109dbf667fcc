package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	h.respond(w, r, "App version", http.StatusOK, map[string]string{"version": serverVersion})
}

func (h *Handler) appRunning(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "App is running.", http.StatusOK, nil)
}

func (h *Handler) test(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "Successfully Tested", http.StatusOK, nil)
}
