// Package shutdownqueue runs named cleanup tasks in reverse order of
// registration when the process stops.
//
//	q := shutdownqueue.New()
//	q.Add("db", func(ctx context.Context) error { return db.Close() })
//	...
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	err := q.Shutdown(ctx)
//
// Tasks run once. Panics are recovered and reported as errors. Shutdown is
// idempotent and returns every task error joined with errors.Join.
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Task is a shutdown function. It should honor ctx and return an error
// if it can't finish (or ctx is canceled).
type Task func(ctx context.Context) error

type entry struct {
	name string
	task Task
}

// Queue is safe for concurrent use. The zero value is ready to use.
type Queue struct {
	mu      sync.Mutex
	entries []entry
	closed  bool
}

func New() *Queue {
	return &Queue{entries: make([]entry, 0, 8)}
}

// Add registers a task to be run on Shutdown, in LIFO order.
// If t is nil or shutdown has already started, Add does nothing.
func (q *Queue) Add(name string, t Task) {
	if t == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.entries = append(q.entries, entry{name: name, task: t})
}

// Shutdown drains all registered tasks in LIFO order. Later calls are no-ops.
//
// If ctx is canceled mid-drain, Shutdown stops before the next task and the
// returned error includes the context error.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()

	q.closed = true
	entries := q.entries
	q.entries = nil

	q.mu.Unlock()

	var errs []error

	for i := len(entries) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))

			return errors.Join(errs...)
		default:
		}

		err := run(ctx, entries[i])
		if err != nil {
			slog.Error("shutdown task failed", "task", entries[i].name, "error", err)
			errs = append(errs, err)

			continue
		}

		slog.Debug("shutdown task done", "task", entries[i].name)
	}

	return errors.Join(errs...)
}

func run(ctx context.Context, e entry) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task %q: %v", e.name, r)
		}
	}()

	err = e.task(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}

	return nil
}
