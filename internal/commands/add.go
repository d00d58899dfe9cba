package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"itasks/internal/config"
	"itasks/internal/exitcode"
	"itasks/internal/form"
	"itasks/internal/output"
	"itasks/internal/submit"
	"itasks/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(d string) {
	c.description = d
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "itasks add [--description <text>] <title...>" }
func (c *AddCmd) NeedsBackend() bool { return true }
func (c *AddCmd) Interactive() bool  { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, wf Workflow, args []string, out, errOut io.Writer) int {
	f := form.New(wf, cfg.Endpoint, form.Callbacks{
		OnTaskCreated: func(t task.Task) {
			if !cfg.Quiet {
				output.FormatTaskDetail(out, t)
			}
		},
		OnError: func(msg string) {
			fmt.Fprintf(errOut, "error: %s\n", msg)
		},
	})
	f.SetTitle(strings.Join(args, " "))
	f.SetDescription(c.description)

	if _, err := f.Submit(ctx); err != nil {
		var verr *submit.ValidationError
		if errors.As(err, &verr) {
			output.FormatFieldErrors(errOut, verr.Fields)
			return exitcode.UserError
		}
		return exitcode.BackendError
	}
	return exitcode.Success
}
