// Package dispatch fans notification jobs out over a bounded goroutine pool.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Pool runs batches of jobs concurrently and waits for them to finish
type Pool struct {
	mu   sync.RWMutex
	pool *ants.Pool
	size int
}

// NewPool creates a pool with the given number of workers. It must be started before use.
func NewPool(size int) *Pool {
	return &Pool{size: size}
}

// Start allocates the worker pool
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return nil
	}
	pool, err := ants.NewPool(p.size, ants.WithExpiryDuration(60*time.Second))
	if err != nil {
		return fmt.Errorf("pool init failed: %w", err)
	}
	p.pool = pool
	zap.L().Info("dispatch pool started", zap.Int("size", p.size))
	return nil
}

// Stop releases the worker pool
func (p *Pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		pool := p.pool
		p.pool = nil
		pool.Release()
		zap.L().Info("dispatch pool stopped")
	}
}

// Run executes all jobs and blocks until every one has returned or ctx is done.
// A nil or stopped pool runs jobs on plain goroutines.
func (p *Pool) Run(ctx context.Context, jobs ...func()) {
	if len(jobs) == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for _, job := range jobs {
		run := func() {
			defer wg.Done()
			safeRun(job)
		}
		if !p.submit(run) {
			go run()
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		zap.L().Warn("dispatch batch abandoned", zap.Error(ctx.Err()))
	}
}

func (p *Pool) submit(fn func()) bool {
	if p == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.pool == nil {
		return false
	}
	if err := p.pool.Submit(fn); err != nil {
		zap.L().Warn("dispatch submit failed, falling back to goroutine", zap.Error(err))
		return false
	}
	return true
}

func safeRun(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("dispatch job panicked", zap.Any("panic", r))
		}
	}()
	fn()
}
