package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/stretchr/testify/assert"
)

type mockCleaner struct {
	calls atomic.Int32
	err   error
}

func (m *mockCleaner) ClearExpiredSessions(context.Context) (int64, error) {
	m.calls.Add(1)
	if m.err != nil {
		return 0, m.err
	}
	return 2, nil
}

func runFor(t *testing.T, w Worker, d time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(d + time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestSessionSweeper_SweepsOnEveryTick(t *testing.T) {
	cleaner := &mockCleaner{}
	sweeper := NewSessionSweeper(cleaner, 10*time.Millisecond, logger.Nop())

	runFor(t, sweeper, 100*time.Millisecond)

	assert.GreaterOrEqual(t, cleaner.calls.Load(), int32(2))
}

func TestSessionSweeper_KeepsRunningOnError(t *testing.T) {
	cleaner := &mockCleaner{err: errors.New("db down")}
	sweeper := NewSessionSweeper(cleaner, 10*time.Millisecond, logger.Nop())

	runFor(t, sweeper, 100*time.Millisecond)

	assert.GreaterOrEqual(t, cleaner.calls.Load(), int32(2))
}

func TestSessionSweeper_DisabledInterval(t *testing.T) {
	cleaner := &mockCleaner{}
	sweeper := NewSessionSweeper(cleaner, 0, logger.Nop())

	done := make(chan struct{})
	go func() {
		sweeper.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper should return immediately")
	}
	assert.Zero(t, cleaner.calls.Load())
}
