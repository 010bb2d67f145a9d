package eventloop

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/samber/oops"
)

// Task is one unit of work run on the loop goroutine
type Task func(ctx context.Context)

type job struct {
	name string
	task Task
}

// Loop runs submitted tasks one at a time in arrival order. Every inbound
// event, scanner pass and flush goes through it, so state mutations never
// interleave.
type Loop struct {
	jobs    chan job
	done    chan struct{}
	closed  bool
	started atomic.Bool
	mu      sync.RWMutex
}

func New(size int) *Loop {
	if size <= 0 {
		size = 256
	}
	return &Loop{
		jobs: make(chan job, size),
		done: make(chan struct{}),
	}
}

// Submit enqueues a task, blocking while the queue is full
func (l *Loop) Submit(ctx context.Context, name string, task Task) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return oops.With("task", name).Wrap(errors.ErrQueueClosed)
	}

	select {
	case <-ctx.Done():
		return oops.With("task", name).Wrap(ctx.Err())
	case l.jobs <- job{name: name, task: task}:
		return nil
	}
}

// Run consumes tasks until the loop is closed and drained or ctx is done
func (l *Loop) Run(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-l.jobs:
			if !ok {
				return
			}
			l.run(ctx, j)
		}
	}
}

func (l *Loop) run(ctx context.Context, j job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Task panicked", "task", j.name, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	j.task(ctx)
}

// Close stops accepting tasks and waits until queued ones have run
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.jobs)
	l.mu.Unlock()

	if l.started.Load() {
		<-l.done
	}
}
