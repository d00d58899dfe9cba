package submit

import (
	"errors"
	"fmt"
	"strings"

	"itasks/internal/task"
)

// Display messages handed to error callbacks.
const (
	MsgValidation = "validation failed: check the form fields"
	MsgUnknown    = "unknown failure connecting to the server"
)

// ValidationError is returned when the draft fails validation. No request
// was made.
type ValidationError struct {
	Fields []task.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid task: " + strings.Join(parts, "; ")
}

// NetworkError is returned when a real request fails. StatusCode is the
// server's HTTP status, or 0 when no response arrived.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("network error (status %d): %v", e.StatusCode, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Message maps a submission error to the single string shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return MsgValidation
	}

	var nerr *NetworkError
	if errors.As(err, &nerr) {
		if nerr.StatusCode == 0 {
			return "server error (no response)"
		}
		return fmt.Sprintf("server error (status %d)", nerr.StatusCode)
	}

	return MsgUnknown
}

var errNoRemote = errors.New("no remote backend configured")
