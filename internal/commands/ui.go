package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"itasks/internal/config"
	"itasks/internal/exitcode"
	"itasks/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command. It is also what a bare `itasks` runs.
type UICmd struct{}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Open the task list screen" }
func (c *UICmd) Usage() string      { return "itasks ui" }
func (c *UICmd) NeedsBackend() bool { return true }
func (c *UICmd) Interactive() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, wf Workflow, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if err := ui.Run(ctx, wf, cfg.Endpoint, cfg.Logger, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
