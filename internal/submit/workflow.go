// Package submit validates task drafts and dispatches them to a real
// endpoint or to a local simulation.
package submit

import (
	"context"
	"log/slog"

	"itasks/internal/backend/simulated"
	"itasks/internal/logging"
	"itasks/internal/service"
	"itasks/internal/task"
)

// RemoteFactory returns the backend for a real endpoint.
type RemoteFactory func(endpoint string) (service.Service, error)

// Options configures a Workflow.
type Options struct {
	// Remote builds the backend for real endpoints. Required for the real
	// path; without it real submissions fail with a NetworkError.
	Remote RemoteFactory

	// Simulator handles submissions when no real endpoint is configured.
	// Defaults to a simulated backend with simulated.DefaultDelay.
	Simulator service.Service

	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Workflow runs the validate, dispatch and error mapping steps of a task
// submission. It holds no per-submission state and never touches the
// caller's collection, so one Workflow can serve any number of forms.
type Workflow struct {
	remote RemoteFactory
	sim    service.Service
	logger *slog.Logger
}

// New creates a workflow.
func New(opts Options) *Workflow {
	w := &Workflow{
		remote: opts.Remote,
		sim:    opts.Simulator,
		logger: opts.Logger,
	}
	if w.sim == nil {
		w.sim = simulated.New(simulated.DefaultDelay)
	}
	if w.logger == nil {
		w.logger = logging.Discard()
	}
	return w
}

// Submit validates draft and creates it on endpoint, or locally when
// endpoint is not a real endpoint. It returns a *ValidationError without
// doing any I/O when the draft is invalid, and a *NetworkError when the
// real request fails. Failures are not retried.
func (w *Workflow) Submit(ctx context.Context, draft task.Draft, endpoint string) (task.Task, error) {
	if errs := task.Validate(draft); len(errs) > 0 {
		return task.Task{}, &ValidationError{Fields: errs}
	}

	if !IsRealEndpointConfigured(endpoint) {
		w.logger.Debug("simulation enabled: endpoint is not a real endpoint, no request made",
			"endpoint", endpoint)
		return w.sim.CreateTask(ctx, draft)
	}

	svc, err := w.backend(endpoint)
	if err != nil {
		return task.Task{}, err
	}

	created, err := svc.CreateTask(ctx, draft)
	if err != nil {
		w.logger.Warn("submit task failed", "endpoint", endpoint, "err", err)
		return task.Task{}, &NetworkError{StatusCode: service.StatusCode(err), Err: err}
	}

	w.logger.Debug("task created", "id", created.ID)
	return created, nil
}

// Delete deletes the task with id on endpoint. Simulated endpoints have
// nothing to delete and always succeed.
func (w *Workflow) Delete(ctx context.Context, id, endpoint string) error {
	if !IsRealEndpointConfigured(endpoint) {
		w.logger.Debug("simulation enabled: delete is local only", "id", id)
		return w.sim.DeleteTask(ctx, id)
	}

	svc, err := w.backend(endpoint)
	if err != nil {
		return err
	}

	if err := svc.DeleteTask(ctx, id); err != nil {
		w.logger.Warn("delete task failed", "endpoint", endpoint, "id", id, "err", err)
		return &NetworkError{StatusCode: service.StatusCode(err), Err: err}
	}
	return nil
}

func (w *Workflow) backend(endpoint string) (service.Service, error) {
	if w.remote == nil {
		return nil, &NetworkError{Err: errNoRemote}
	}
	svc, err := w.remote(endpoint)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return svc, nil
}
