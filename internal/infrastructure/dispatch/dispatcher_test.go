package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T, queueSize int, maxRetries uint64) *Dispatcher {
	t.Helper()
	d := NewDispatcher(queueSize, 2, maxRetries, time.Millisecond, nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = d.Shutdown(ctx)
	})
	return d
}

func waitForTerminal(t *testing.T, d *Dispatcher, id string) Job {
	t.Helper()
	var job Job
	require.Eventually(t, func() bool {
		j, ok := d.Job(id)
		if !ok {
			return false
		}
		job = j
		return j.Status == JobStatusSucceeded || j.Status == JobStatusFailed
	}, 2*time.Second, 5*time.Millisecond)
	return job
}

func TestDispatcher_Submit(t *testing.T) {
	t.Run("unknown task", func(t *testing.T) {
		d := newTestDispatcher(t, 4, 0)
		d.Start()

		_, err := d.Submit("tasks.does_not_exist", nil)
		require.ErrorIs(t, err, ErrUnknownTask)
	})

	t.Run("success carries the handler result", func(t *testing.T) {
		d := newTestDispatcher(t, 4, 0)
		d.Register("tasks.echo", func(_ context.Context, args map[string]interface{}) (interface{}, error) {
			return args["value"], nil
		})
		d.Start()

		id, err := d.Submit("tasks.echo", map[string]interface{}{"value": "pong"})
		require.NoError(t, err)

		job := waitForTerminal(t, d, id)
		assert.Equal(t, JobStatusSucceeded, job.Status)
		assert.Equal(t, "pong", job.Result)
		assert.Empty(t, job.Error)
		assert.False(t, job.Finished.IsZero())
	})

	t.Run("queue full", func(t *testing.T) {
		d := NewDispatcher(1, 1, 0, time.Millisecond, nil)
		block := make(chan struct{})
		d.Register("tasks.block", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			<-block
			return nil, nil
		})
		d.Start()
		defer func() {
			close(block)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = d.Shutdown(ctx)
		}()

		// First submit is picked up by the worker, second fills the queue.
		_, err := d.Submit("tasks.block", nil)
		require.NoError(t, err)
		require.Eventually(t, func() bool {
			_, err := d.Submit("tasks.block", nil)
			return err == nil
		}, time.Second, time.Millisecond)

		_, err = d.Submit("tasks.block", nil)
		require.ErrorIs(t, err, ErrQueueFull)
	})
}

func TestDispatcher_Retry(t *testing.T) {
	t.Run("retries then succeeds", func(t *testing.T) {
		d := newTestDispatcher(t, 4, 2)
		var attempts atomic.Int64
		d.Register("tasks.flaky", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			if attempts.Add(1) < 3 {
				return nil, errors.New("transient")
			}
			return "done", nil
		})
		d.Start()

		id, err := d.Submit("tasks.flaky", nil)
		require.NoError(t, err)

		job := waitForTerminal(t, d, id)
		assert.Equal(t, JobStatusSucceeded, job.Status)
		assert.Equal(t, int64(3), attempts.Load())
	})

	t.Run("fails after retries exhausted", func(t *testing.T) {
		d := newTestDispatcher(t, 4, 2)
		var attempts atomic.Int64
		d.Register("tasks.broken", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			attempts.Add(1)
			return nil, errors.New("persistent failure")
		})
		d.Start()

		id, err := d.Submit("tasks.broken", nil)
		require.NoError(t, err)

		job := waitForTerminal(t, d, id)
		assert.Equal(t, JobStatusFailed, job.Status)
		assert.Contains(t, job.Error, "persistent failure")
		// Initial attempt plus two retries.
		assert.Equal(t, int64(3), attempts.Load())
	})
}

func TestDispatcher_Shutdown(t *testing.T) {
	d := NewDispatcher(4, 1, 0, time.Millisecond, nil)
	d.Register("tasks.noop", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
		return nil, nil
	})
	d.Start()

	id, err := d.Submit("tasks.noop", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))

	// Queued work drains before shutdown returns.
	job, ok := d.Job(id)
	require.True(t, ok)
	assert.Equal(t, JobStatusSucceeded, job.Status)

	_, err = d.Submit("tasks.noop", nil)
	require.ErrorIs(t, err, ErrStopped)
}
