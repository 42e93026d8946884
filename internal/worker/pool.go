package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Pool runs several worker loops inside one process. Each loop gets a
// distinct derived worker id ("<base>#<n>") so the job store can always name
// the lock owner; loops share nothing else.
type Pool struct {
	workers []*Worker
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewPool derives n workers from a prototype configuration. The factory is
// invoked once per loop with the derived id.
func NewPool(n int, baseID string, factory func(workerID string) *Worker, logger *slog.Logger) *Pool {
	if n < 1 {
		n = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{logger: logger}
	for i := 0; i < n; i++ {
		id := baseID
		if n > 1 {
			id = fmt.Sprintf("%s#%d", baseID, i+1)
		}
		p.workers = append(p.workers, factory(id))
	}
	return p
}

// Start launches all loops. They run until ctx is canceled.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}
	p.logger.Info("worker pool started", "workers", len(p.workers))
}

// Wait blocks until every loop has returned, or until waitCtx is done.
// In-flight jobs are not interrupted beyond their own ctx; abandoned claims
// are recovered by other workers once the lease expires.
func (p *Pool) Wait(waitCtx context.Context) {
	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-waitCtx.Done():
		p.logger.Warn("shutdown interrupted by context")
	case <-done:
		p.logger.Info("worker pool drained, shutdown complete")
	}
}
