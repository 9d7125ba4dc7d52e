package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunAllTasks(t *testing.T) {
	var done atomic.Int32
	tasks := map[string]Task{
		"a.pdf": func(context.Context) error { done.Add(1); return nil },
		"b.pdf": func(context.Context) error { done.Add(1); return nil },
		"c.csv": func(context.Context) error { done.Add(1); return nil },
	}

	p := NewPool(PoolConfig{Workers: 2, RetryDelay: time.Millisecond})
	results := p.Run(context.Background(), tasks)

	require.Len(t, results, 3)
	assert.Equal(t, int32(3), done.Load())
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, 1, r.Attempts)
	}
}

func TestPool_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	tasks := map[string]Task{
		"flaky": func(context.Context) error {
			if calls.Add(1) < 3 {
				return errors.New("transient")
			}
			return nil
		},
	}

	p := NewPool(PoolConfig{Workers: 1, MaxRetries: 3, RetryDelay: time.Millisecond})
	results := p.Run(context.Background(), tasks)

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 3, results[0].Attempts)
}

func TestPool_ReportsExhaustedRetries(t *testing.T) {
	wantErr := errors.New("backend injoignable")
	tasks := map[string]Task{
		"broken": func(context.Context) error { return wantErr },
	}

	p := NewPool(PoolConfig{Workers: 1, MaxRetries: 2, RetryDelay: time.Millisecond})
	results := p.Run(context.Background(), tasks)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, wantErr)
	assert.Equal(t, 2, results[0].Attempts)
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := map[string]Task{
		"never": func(context.Context) error { return nil },
	}
	p := NewPool(PoolConfig{Workers: 1})
	results := p.Run(ctx, tasks)

	// The feeder gives up once the context is cancelled; the run must still
	// terminate without deadlock.
	assert.LessOrEqual(t, len(results), 1)
}
