// Package form keeps the state of one task creation form: its fields,
// inline field errors, and the single in-flight submission.
package form

import (
	"context"
	"errors"

	"itasks/internal/submit"
	"itasks/internal/task"
)

// State is the state of the current submission attempt.
type State int

const (
	Idle State = iota
	Validating
	Invalid
	Submitting
	Succeeded
	Failed
)

var stateNames = [...]string{"idle", "validating", "invalid", "submitting", "succeeded", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// ErrSubmitting is returned when a submission is already in flight.
var ErrSubmitting = errors.New("submission already in progress")

// Submitter runs a submission. *submit.Workflow implements it.
type Submitter interface {
	Submit(ctx context.Context, draft task.Draft, endpoint string) (task.Task, error)
}

// Callbacks are how a form reports upward. Nil callbacks are skipped.
type Callbacks struct {
	OnTaskCreated func(task.Task)
	OnError       func(message string)
	OnClose       func()
}

// Form is one form instance. Begin and Resolve must be called from the
// goroutine that owns the form; only Dispatch may run elsewhere.
type Form struct {
	submitter Submitter
	endpoint  string
	cb        Callbacks

	title       string
	description string
	errs        []task.FieldError
	state       State
}

// New creates an empty form that submits to endpoint.
func New(submitter Submitter, endpoint string, cb Callbacks) *Form {
	return &Form{submitter: submitter, endpoint: endpoint, cb: cb}
}

// Title returns the title field.
func (f *Form) Title() string { return f.title }

// Description returns the description field.
func (f *Form) Description() string { return f.description }

// State returns the current submission state.
func (f *Form) State() State { return f.state }

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.state == Submitting }

// Draft returns the current field values.
func (f *Form) Draft() task.Draft {
	return task.Draft{Title: f.title, Description: f.description}
}

// Errors returns the field errors currently shown.
func (f *Form) Errors() []task.FieldError {
	return append([]task.FieldError(nil), f.errs...)
}

// FieldError returns the error shown for field, or "".
func (f *Form) FieldError(field string) string {
	return task.ErrorFor(f.errs, field)
}

// SetTitle edits the title and clears its errors.
func (f *Form) SetTitle(s string) {
	f.title = s
	f.edited(task.FieldTitle)
}

// SetDescription edits the description and clears its errors.
func (f *Form) SetDescription(s string) {
	f.description = s
	f.edited(task.FieldDescription)
}

func (f *Form) edited(field string) {
	f.errs = task.Without(f.errs, field)
	switch f.state {
	case Invalid, Failed, Succeeded:
		f.state = Idle
	}
}

// Begin validates the fields and moves the form to Submitting. On
// validation failure the errors are shown, OnError is called and a
// *submit.ValidationError is returned. While a submission is in flight it
// returns ErrSubmitting and changes nothing.
func (f *Form) Begin() (task.Draft, error) {
	if f.state == Submitting {
		return task.Draft{}, ErrSubmitting
	}

	f.state = Validating
	draft := f.Draft()
	if errs := task.Validate(draft); len(errs) > 0 {
		f.errs = errs
		f.state = Invalid
		err := &submit.ValidationError{Fields: errs}
		f.notifyError(err)
		return task.Draft{}, err
	}

	f.errs = nil
	f.state = Submitting
	return draft, nil
}

// Dispatch sends a draft returned by Begin. It does not touch form state.
func (f *Form) Dispatch(ctx context.Context, draft task.Draft) (task.Task, error) {
	return f.submitter.Submit(ctx, draft, f.endpoint)
}

// Resolve records the outcome of Dispatch. On success the fields are
// cleared and OnTaskCreated is called; on failure the fields are kept for
// a retry and OnError is called.
func (f *Form) Resolve(created task.Task, err error) {
	if f.state != Submitting {
		return
	}

	if err != nil {
		f.state = Failed
		var verr *submit.ValidationError
		if errors.As(err, &verr) {
			f.errs = verr.Fields
		}
		f.notifyError(err)
		return
	}

	f.state = Succeeded
	f.title, f.description = "", ""
	if f.cb.OnTaskCreated != nil {
		f.cb.OnTaskCreated(created)
	}
}

// Submit runs Begin, Dispatch and Resolve in order.
func (f *Form) Submit(ctx context.Context) (task.Task, error) {
	draft, err := f.Begin()
	if err != nil {
		return task.Task{}, err
	}
	created, err := f.Dispatch(ctx, draft)
	f.Resolve(created, err)
	if err != nil {
		return task.Task{}, err
	}
	return created, nil
}

// Close calls OnClose. It is refused while a submission is in flight.
func (f *Form) Close() error {
	if f.state == Submitting {
		return ErrSubmitting
	}
	if f.cb.OnClose != nil {
		f.cb.OnClose()
	}
	return nil
}

// Reset empties the form for reuse.
func (f *Form) Reset() {
	if f.state == Submitting {
		return
	}
	f.title, f.description = "", ""
	f.errs = nil
	f.state = Idle
}

func (f *Form) notifyError(err error) {
	if f.cb.OnError != nil {
		f.cb.OnError(submit.Message(err))
	}
}
