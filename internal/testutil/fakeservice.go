// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"itasks/internal/service"
	"itasks/internal/task"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu        sync.Mutex
	tasks     []task.Task
	nextID    int
	endpoints []string

	// Error injection for testing
	CreateTaskErr error
	DeleteTaskErr error
	FactoryErr    error

	// Call counters
	CreateCalls int
	DeleteCalls int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask stores a task directly, bypassing CreateTask.
func (f *FakeService) AddTask(id, title, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task.Task{ID: id, Title: title, Description: description})
}

// Tasks returns a copy of the stored tasks in creation order.
func (f *FakeService) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]task.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Factory returns a remote factory that hands out f and records every
// endpoint it was asked for. It is assignable to submit.RemoteFactory.
func (f *FakeService) Factory() func(endpoint string) (service.Service, error) {
	return func(endpoint string) (service.Service, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.endpoints = append(f.endpoints, endpoint)
		if f.FactoryErr != nil {
			return nil, f.FactoryErr
		}
		return f, nil
	}
}

// Endpoints returns the endpoints passed to the factory.
func (f *FakeService) Endpoints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.endpoints...)
}

// CreateTask implements service.Service. IDs are "1", "2", ...
func (f *FakeService) CreateTask(ctx context.Context, draft task.Draft) (task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateTaskErr != nil {
		return task.Task{}, f.CreateTaskErr
	}

	t := draft.Task(strconv.Itoa(f.nextID))
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

// DeleteTask implements service.Service. Unknown ids yield a 404
// service.StatusError.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.StatusError{Code: http.StatusNotFound, Message: "not found"}
}
