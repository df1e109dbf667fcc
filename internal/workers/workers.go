package workers

import (
	"context"
	"sync"
)

// Workers is a fixed group of workers sharing one lifetime.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers, skipping nil entries so optional
// workers can be passed unconditionally.
func NewWorkers(workers ...Worker) *Workers {
	group := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Len reports how many workers Run will start.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
