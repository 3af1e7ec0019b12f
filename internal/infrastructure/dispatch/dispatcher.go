package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

var (
	ErrUnknownTask = errors.New("unknown task")
	ErrQueueFull   = errors.New("dispatch queue is full")
	ErrStopped     = errors.New("dispatcher is stopped")
)

// JobStatus is the lifecycle of a submitted job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Job is the observable state of a submitted task invocation. Result is the
// handler's return value once the job succeeded; Error the final error text
// once it failed.
type Job struct {
	ID        string      `json:"id"`
	Task      string      `json:"task"`
	Status    JobStatus   `json:"status"`
	Result    interface{} `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	Submitted time.Time   `json:"submitted"`
	Finished  time.Time   `json:"finished,omitempty"`
}

// HandlerFunc executes one task invocation. Handlers must be safe for
// concurrent use; the dispatcher runs them from multiple workers.
type HandlerFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

type queuedJob struct {
	id   string
	task string
	args map[string]interface{}
}

// Dispatcher runs registered task handlers on a bounded in-process queue with
// a fixed worker pool. Failed invocations are retried a fixed number of times
// with a constant delay before the job is marked failed.
type Dispatcher struct {
	handlers   map[string]HandlerFunc
	queue      chan queuedJob
	workers    int
	maxRetries uint64
	retryDelay time.Duration
	logger     *zap.Logger

	mu      sync.RWMutex
	jobs    map[string]*Job
	stopped bool
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

func NewDispatcher(queueSize, workers int, maxRetries uint64, retryDelay time.Duration, logger *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	if workers <= 0 {
		workers = 4
	}
	if retryDelay <= 0 {
		retryDelay = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handlers:   make(map[string]HandlerFunc),
		queue:      make(chan queuedJob, queueSize),
		workers:    workers,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		logger:     logger,
		jobs:       make(map[string]*Job),
	}
}

// Register binds a handler to a task name. Registration must finish before
// Start; the handler map is not guarded afterwards.
func (d *Dispatcher) Register(task string, h HandlerFunc) {
	d.handlers[task] = h
}

// Start launches the worker pool. Workers drain the queue until Shutdown.
func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	d.logger.Info("dispatcher started",
		zap.Int("workers", d.workers),
		zap.Int("queue_size", cap(d.queue)),
		zap.Uint64("max_retries", d.maxRetries))
}

// Shutdown stops accepting jobs, finishes queued work and waits for the
// workers to drain, or gives up when ctx expires.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	d.mu.Unlock()

	close(d.queue)

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if d.cancel != nil {
			d.cancel()
		}
		return ctx.Err()
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.logger.Info("dispatcher stopped")
	return nil
}

// Submit enqueues a task invocation and returns the job id to poll.
func (d *Dispatcher) Submit(task string, args map[string]interface{}) (string, error) {
	if _, ok := d.handlers[task]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTask, task)
	}

	// The lock also orders Submit against Shutdown closing the queue; the
	// enqueue is non-blocking so holding it here is safe.
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return "", ErrStopped
	}
	job := &Job{
		ID:        uuid.NewString(),
		Task:      task,
		Status:    JobStatusQueued,
		Submitted: time.Now().UTC(),
	}

	select {
	case d.queue <- queuedJob{id: job.ID, task: task, args: args}:
		d.jobs[job.ID] = job
		return job.ID, nil
	default:
		return "", ErrQueueFull
	}
}

// Job returns a snapshot of the job state.
func (d *Dispatcher) Job(id string) (Job, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	job, ok := d.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for qj := range d.queue {
		d.run(ctx, qj)
	}
}

func (d *Dispatcher) run(ctx context.Context, qj queuedJob) {
	d.setStatus(qj.id, JobStatusRunning)
	handler := d.handlers[qj.task]

	var result interface{}
	backoff := retry.WithMaxRetries(d.maxRetries, retry.NewConstant(d.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out, err := handler(ctx, qj.args)
		if err != nil {
			d.logger.Warn("task attempt failed",
				zap.String("task", qj.task),
				zap.String("job_id", qj.id),
				zap.Error(err))
			return retry.RetryableError(err)
		}
		result = out
		return nil
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	job, ok := d.jobs[qj.id]
	if !ok {
		return
	}
	job.Finished = time.Now().UTC()
	if err != nil {
		job.Status = JobStatusFailed
		job.Error = err.Error()
		d.logger.Error("task failed",
			zap.String("task", qj.task),
			zap.String("job_id", qj.id),
			zap.Error(err))
		return
	}
	job.Status = JobStatusSucceeded
	job.Result = result
	d.logger.Info("task succeeded",
		zap.String("task", qj.task),
		zap.String("job_id", qj.id))
}

func (d *Dispatcher) setStatus(id string, status JobStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if job, ok := d.jobs[id]; ok {
		job.Status = status
	}
}
