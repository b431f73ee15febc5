// Package worker provides the concurrency layer for batch validation:
// a bounded worker pool and a keyed rate limiter for AI provider calls.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job
type Result interface {
	GetError() error
}

// Pool executes jobs across a fixed number of workers
type Pool struct {
	workers   int
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	startOnce sync.Once
}

// NewPool creates a pool with the given worker count
func NewPool(workers int) *Pool {
	return NewPoolSize(workers, 0)
}

// NewPoolSize creates a pool whose queues hold up to queue entries.
// Callers submitting a known batch before collecting results should
// size the queue to the batch, so Submit never blocks on a full
// results buffer that nothing is draining yet.
func NewPoolSize(workers, queue int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queue < workers*2 {
		queue = workers * 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, queue),
		results: make(chan Result, queue),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers; calling it more than once is a no-op
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.run()
		}
	})
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, waits for the workers to drain it, and
// returns all results. The pool cannot be reused afterwards.
func (p *Pool) Wait() []Result {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	p.cancel()
	return results
}

// Stop cancels outstanding work without waiting for completion
func (p *Pool) Stop() {
	p.cancel()
}
