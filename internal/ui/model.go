// Package ui is the interactive task list screen. It owns the displayed
// collection for the lifetime of the session and hosts the creation form.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"itasks/internal/form"
	"itasks/internal/logging"
	"itasks/internal/output"
	"itasks/internal/submit"
	"itasks/internal/task"
	"itasks/internal/tasklist"
)

// Workflow is the submission workflow as seen by the screen.
type Workflow interface {
	Submit(ctx context.Context, draft task.Draft, endpoint string) (task.Task, error)
	Delete(ctx context.Context, id, endpoint string) error
}

type mode int

const (
	modeList mode = iota
	modeForm
)

const (
	focusTitle = iota
	focusDescription
)

const helpLine = "Press 'a' to add, 'd' to delete, 'q' to quit."

// submittedMsg carries the outcome of a form submission.
type submittedMsg struct {
	task task.Task
	err  error
}

// deletedMsg carries the outcome of a delete request.
type deletedMsg struct {
	removal tasklist.Removal
	err     error
}

// Model is the bubbletea model for the list screen.
type Model struct {
	ctx      context.Context
	wf       Workflow
	endpoint string
	logger   *slog.Logger

	list   *tasklist.List
	form   *form.Form
	inputs [2]textinput.Model
	focus  int
	mode   mode
	cursor int
	status string
}

// New creates the screen with an empty list.
func New(ctx context.Context, wf Workflow, endpoint string, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := &Model{
		ctx:      ctx,
		wf:       wf,
		endpoint: endpoint,
		logger:   logger,
		list:     &tasklist.List{},
		status:   helpLine,
	}
	m.form = form.New(wf, endpoint, form.Callbacks{
		OnTaskCreated: m.onTaskCreated,
		OnError:       m.onError,
		OnClose:       m.onClose,
	})

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 256
	title.Width = 40

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1024
	desc.Width = 40

	m.inputs = [2]textinput.Model{title, desc}
	return m
}

// Run starts the screen on out and blocks until the user quits or ctx is
// done.
func Run(ctx context.Context, wf Workflow, endpoint string, logger *slog.Logger, out io.Writer, opts ...tea.ProgramOption) error {
	m := New(ctx, wf, endpoint, logger)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		m.form.Resolve(msg.task, msg.err)
		return m, nil

	case deletedMsg:
		m.resolveDelete(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	// Cursor blink and other input messages.
	if m.mode == modeForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case "a", "n":
		return m, m.openForm()
	case "d", "x":
		return m, m.deleteSelected()
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if err := m.form.Close(); err != nil {
			m.status = "saving, please wait"
		}
		return m, nil

	case "enter":
		return m, m.submit()

	case "tab", "shift+tab", "up", "down":
		if m.form.Submitting() {
			return m, nil
		}
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	}

	if m.form.Submitting() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncField(m.focus)
	return m, cmd
}

// syncField copies an edited input into the form, which clears that
// field's errors.
func (m *Model) syncField(i int) {
	v := m.inputs[i].Value()
	switch i {
	case focusTitle:
		if v != m.form.Title() {
			m.form.SetTitle(v)
		}
	case focusDescription:
		if v != m.form.Description() {
			m.form.SetDescription(v)
		}
	}
}

func (m *Model) openForm() tea.Cmd {
	m.mode = modeForm
	m.form.Reset()
	m.resetInputs()
	m.status = ""
	return m.inputs[focusTitle].Focus()
}

func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = focusTitle
}

// submit starts a submission. The request runs as a command; its result
// comes back as a submittedMsg.
func (m *Model) submit() tea.Cmd {
	draft, err := m.form.Begin()
	if err != nil {
		if errors.Is(err, form.ErrSubmitting) {
			m.status = "saving, please wait"
		}
		return nil
	}

	m.status = "saving..."
	f, ctx := m.form, m.ctx
	return func() tea.Msg {
		created, err := f.Dispatch(ctx, draft)
		return submittedMsg{task: created, err: err}
	}
}

// deleteSelected removes the selected task right away and sends the
// delete request as a command.
func (m *Model) deleteSelected() tea.Cmd {
	t, ok := m.list.At(m.cursor)
	if !ok {
		return nil
	}
	removal, _ := m.list.Remove(t.ID)
	if m.cursor >= m.list.Len() && m.cursor > 0 {
		m.cursor--
	}
	m.status = fmt.Sprintf("deleted %q", t.Title)

	wf, ctx, endpoint := m.wf, m.ctx, m.endpoint
	return func() tea.Msg {
		err := wf.Delete(ctx, removal.Task.ID, endpoint)
		return deletedMsg{removal: removal, err: err}
	}
}

// resolveDelete puts a task back when its delete request failed.
func (m *Model) resolveDelete(msg deletedMsg) {
	if msg.err == nil {
		return
	}
	m.logger.Warn("delete failed, restoring task", "id", msg.removal.Task.ID, "err", msg.err)
	if err := m.list.Restore(msg.removal); err != nil {
		m.logger.Warn("restore failed", "id", msg.removal.Task.ID, "err", err)
	}
	m.status = fmt.Sprintf("error: could not delete %q: %s", msg.removal.Task.Title, submit.Message(msg.err))
}

func (m *Model) onTaskCreated(t task.Task) {
	if err := m.list.Prepend(t); err != nil {
		m.logger.Warn("created task not listed", "id", t.ID, "err", err)
		m.status = "error: " + err.Error()
		return
	}
	m.mode = modeList
	m.cursor = 0
	m.resetInputs()
	m.status = fmt.Sprintf("created %q", t.Title)
}

func (m *Model) onError(msg string) {
	m.status = "error: " + msg
}

func (m *Model) onClose() {
	m.mode = modeList
	m.form.Reset()
	m.resetInputs()
	m.status = helpLine
}

func (m *Model) View() string {
	if m.mode == modeForm {
		return m.formView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString("My Tasks\n\n")

	if m.list.Len() == 0 {
		b.WriteString("No pending tasks. Press 'a' to start.\n")
	}
	for i, t := range m.list.Items() {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		b.WriteString(marker)
		output.FormatTask(&b, i+1, t)
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	return b.String()
}

func (m *Model) formView() string {
	var b strings.Builder
	b.WriteString("New Task\n\n")

	fields := [2]string{task.FieldTitle, task.FieldDescription}
	for i, field := range fields {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.form.FieldError(field); msg != "" {
			fmt.Fprintf(&b, "  ! %s\n", msg)
		}
	}

	b.WriteString("\n")
	if m.form.Submitting() {
		b.WriteString("Saving...\n")
	} else {
		b.WriteString("[enter] save  [tab] next field  [esc] cancel\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}
