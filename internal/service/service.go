// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"itasks/internal/task"
)

// Service defines the interface for task backend operations.
// The submission workflow talks to remote and simulated backends only
// through this interface.
type Service interface {
	// CreateTask creates a task from a validated draft.
	// The returned Task is authoritative, including its ID.
	CreateTask(ctx context.Context, draft task.Draft) (task.Task, error)

	// DeleteTask deletes the task with the given ID.
	DeleteTask(ctx context.Context, id string) error
}
