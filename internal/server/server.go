package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/handler"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer wires the HTTP handler and the background workers into a
// [Server]. A nil bgWorkers runs no workers.
func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}
	if bgWorkers == nil {
		bgWorkers = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bgWorkers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx, s.httpServer.ListenAndServe)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts the workers and serve, then blocks until ctx is cancelled or
// serve fails. Workers are stopped in both cases.
func (s *server) run(ctx context.Context, serve func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.logger.Info().Int("workers", s.workers.Len()).Msg("starting background workers")
	workersDone := make(chan struct{})
	go func() {
		s.workers.Run(ctx)
		close(workersDone)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve()
	}()

	var err error
	select {
	case <-ctx.Done():
		// finish HTTP server
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
		cancel()
	}

	<-workersDone
	if err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
