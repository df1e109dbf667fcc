package server

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/handler"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/workers"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionStub struct{}

func (versionStub) GetAppVersion(context.Context) string { return "9.9.9" }

type blockingWorker struct {
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func newTestServer(t *testing.T, w *workers.Workers) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: versionStub{}}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, w, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, srv)
}

func TestNewServer_EmptyHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: versionStub{}},
		config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPAddress)
	assert.Nil(t, srv)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	worker := &blockingWorker{}
	srv := newTestServer(t, workers.NewWorkers(worker))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.run(ctx, func() error { return srv.httpServer.Serve(ln) })
	}()

	resp, err := resty.New().R().Get("http://" + ln.Addr().String() + "/api/version")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "9.9.9", resp.Header().Get("X-Api-Version"))

	cancel()
	select {
	case err = <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
	assert.True(t, worker.stopped.Load(), "workers must be stopped on shutdown")
}

func TestServer_ServeFailureStopsWorkers(t *testing.T) {
	worker := &blockingWorker{}
	srv := newTestServer(t, workers.NewWorkers(worker))
	boom := errors.New("address already in use")

	err := srv.run(context.Background(), func() error { return boom })

	require.ErrorIs(t, err, boom)
	assert.True(t, worker.stopped.Load())
}
