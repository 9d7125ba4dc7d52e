// Package jobs runs batches of short-lived tasks, such as downloading every
// generated document of a session, over a bounded worker pool.
package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one unit of background work.
type Task func(context.Context) error

// Result reports the final outcome of one submitted task.
type Result struct {
	Name     string
	Attempts int
	Err      error
}

// PoolConfig tunes worker count and retry behaviour.
type PoolConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// Pool fans submitted tasks out to a fixed set of workers. Failed tasks are
// retried in place with a delay before being reported as failures.
type Pool struct {
	workers    int
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger

	tasks   chan namedTask
	results chan Result
	wg      sync.WaitGroup
}

type namedTask struct {
	name string
	fn   Task
}

// NewPool builds a pool with the provided configuration.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pool{
		workers:    cfg.Workers,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     cfg.Logger,
		tasks:      make(chan namedTask),
		results:    make(chan Result),
	}
}

// Run executes all tasks and returns one Result per task, in completion
// order. It blocks until every task has finished or ctx is cancelled.
func (p *Pool) Run(ctx context.Context, tasks map[string]Task) []Result {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}

	go func() {
		defer close(p.tasks)
		for name, fn := range tasks {
			select {
			case <-ctx.Done():
				return
			case p.tasks <- namedTask{name: name, fn: fn}:
			}
		}
	}()

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	out := make([]Result, 0, len(tasks))
	for res := range p.results {
		out = append(out, res)
	}
	return out
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.results <- p.attempt(ctx, task)
	}
}

// attempt runs a task with in-place retries.
func (p *Pool) attempt(ctx context.Context, task namedTask) Result {
	var err error
	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return Result{Name: task.name, Attempts: attempt - 1, Err: ctx.Err()}
		}
		if err = task.fn(ctx); err == nil {
			return Result{Name: task.name, Attempts: attempt}
		}
		p.logger.Sugar().Warnw("task failed",
			"task", task.name, "attempt", attempt, "error", err)
		if attempt < p.maxRetries {
			select {
			case <-ctx.Done():
				return Result{Name: task.name, Attempts: attempt, Err: ctx.Err()}
			case <-time.After(p.retryDelay):
			}
		}
	}
	return Result{Name: task.name, Attempts: p.maxRetries, Err: err}
}
