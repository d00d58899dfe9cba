// Package tasklist holds the displayed task collection and reconciles
// submission and deletion results into it.
package tasklist

import (
	"errors"
	"fmt"

	"itasks/internal/task"
)

// ErrDuplicateID is returned when a task with the same ID is already listed.
var ErrDuplicateID = errors.New("duplicate task id")

// List is an ordered task collection, newest first. It is owned by one
// screen and is not safe for concurrent use.
type List struct {
	items []task.Task
}

// New creates a list holding tasks in the given order.
func New(tasks ...task.Task) (*List, error) {
	l := &List{}
	for i := len(tasks) - 1; i >= 0; i-- {
		if err := l.Prepend(tasks[i]); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Prepend puts t at position 0.
func (l *List) Prepend(t task.Task) error {
	if l.index(t.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	l.items = append([]task.Task{t}, l.items...)
	return nil
}

// Removal records where a removed task was, so the removal can be undone.
type Removal struct {
	Task  task.Task
	Index int
	// Next is the ID of the task that followed it, or "" if it was last.
	Next string
}

// Remove takes out the task with the given id and no other.
func (l *List) Remove(id string) (Removal, bool) {
	i := l.index(id)
	if i < 0 {
		return Removal{}, false
	}

	r := Removal{Task: l.items[i], Index: i}
	if i+1 < len(l.items) {
		r.Next = l.items[i+1].ID
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return r, true
}

// Restore undoes a Removal. The task goes back in front of the task that
// followed it; if that task is gone too it goes back to its old index,
// clamped to the list length.
func (l *List) Restore(r Removal) error {
	if l.index(r.Task.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.Task.ID)
	}

	at := -1
	if r.Next != "" {
		at = l.index(r.Next)
	}
	if at < 0 {
		at = min(max(r.Index, 0), len(l.items))
	}

	l.items = append(l.items, task.Task{})
	copy(l.items[at+1:], l.items[at:])
	l.items[at] = r.Task
	return nil
}

// Get returns the task with the given id.
func (l *List) Get(id string) (task.Task, bool) {
	i := l.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return l.items[i], true
}

// At returns the task at position i.
func (l *List) At(i int) (task.Task, bool) {
	if i < 0 || i >= len(l.items) {
		return task.Task{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the tasks, newest first.
func (l *List) Items() []task.Task {
	result := make([]task.Task, len(l.items))
	copy(result, l.items)
	return result
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) index(id string) int {
	for i, t := range l.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}
