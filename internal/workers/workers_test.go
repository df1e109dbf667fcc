// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts its runs and returns once ctx is cancelled.
type blockingWorker struct {
	runs    atomic.Int32
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.runs.Add(1)
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_RunStopsAllOnCancel(t *testing.T) {
	group := []*blockingWorker{{}, {}, {}}
	ws := NewWorkers(group[0], group[1], group[2])
	require.Equal(t, 3, ws.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	for i, w := range group {
		assert.EqualValues(t, 1, w.runs.Load(), "worker %d", i)
		assert.True(t, w.stopped.Load(), "worker %d", i)
	}
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	var disabled Worker
	ws := NewWorkers(disabled, &blockingWorker{}, nil)

	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_RunWithoutWorkersReturns(t *testing.T) {
	for name, ws := range map[string]*Workers{
		"constructed": NewWorkers(),
		"zero value":  {},
	} {
		t.Run(name, func(t *testing.T) {
			done := make(chan struct{})
			go func() {
				ws.Run(context.Background())
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("Run blocked with no workers")
			}
		})
	}
}
