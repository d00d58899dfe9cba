package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"itasks/internal/config"
	"itasks/internal/exitcode"
	"itasks/internal/submit"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "itasks rm <id>" }
func (c *RmCmd) NeedsBackend() bool { return true }
func (c *RmCmd) Interactive() bool  { return false }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, wf Workflow, args []string, out, errOut io.Writer) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	if err := wf.Delete(ctx, args[0], cfg.Endpoint); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", submit.Message(err))
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		if submit.IsRealEndpointConfigured(cfg.Endpoint) {
			fmt.Fprintln(out, "ok")
		} else {
			fmt.Fprintln(out, "ok (simulated, nothing sent)")
		}
	}
	return exitcode.Success
}
