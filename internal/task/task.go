// Package task defines the task record, the unvalidated draft, and the
// field validator shared by every host.
package task

// Field names reported in FieldError.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Task is a created task. ID is assigned by the server, or locally when the
// submission is simulated, and never changes afterwards.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Draft is the task being edited. It has no identity until it is promoted.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Task promotes the draft to a Task with the given id. Fields are copied
// unchanged.
func (d Draft) Task(id string) Task {
	return Task{ID: id, Title: d.Title, Description: d.Description}
}

// FieldError describes a rule violated by one draft field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}
