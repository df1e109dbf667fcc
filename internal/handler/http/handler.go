package http

import (
	"time"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/service"
)

type Handler struct {
	services *service.Services

	metrics *httpMetrics

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        newHTTPMetrics(),
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
