// Package simulated implements service.Service locally, standing in for a
// server when no real endpoint is configured.
package simulated

import (
	"context"
	"time"

	"github.com/google/uuid"

	"itasks/internal/task"
)

// DefaultDelay models network latency for a simulated create.
const DefaultDelay = 1500 * time.Millisecond

// Backend creates tasks after a fixed delay and assigns them time-ordered
// ids. It never fails on its own.
type Backend struct {
	delay time.Duration
	newID func() string
}

// New creates a simulated backend that waits delay before each create.
// A negative delay is treated as zero.
func New(delay time.Duration) *Backend {
	if delay < 0 {
		delay = 0
	}
	return &Backend{delay: delay, newID: newID}
}

// Delay returns the configured create delay.
func (b *Backend) Delay() time.Duration {
	return b.delay
}

// CreateTask waits for the delay and returns the draft as a Task with a
// fresh id. It returns early only if ctx is done.
func (b *Backend) CreateTask(ctx context.Context, draft task.Draft) (task.Task, error) {
	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return task.Task{}, ctx.Err()
		}
	}
	return draft.Task(b.newID()), nil
}

// DeleteTask has nothing to delete remotely.
func (b *Backend) DeleteTask(ctx context.Context, id string) error {
	return nil
}

// newID returns a UUIDv7. Version 7 ids embed a millisecond timestamp and a
// monotonic counter, so ids from one process are unique and sort by
// creation time.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
