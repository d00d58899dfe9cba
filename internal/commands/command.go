// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"itasks/internal/config"
	"itasks/internal/task"
)

// Workflow is the submission workflow as seen by commands.
// *submit.Workflow implements it.
type Workflow interface {
	Submit(ctx context.Context, draft task.Draft, endpoint string) (task.Task, error)
	Delete(ctx context.Context, id, endpoint string) error
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command submits or deletes tasks.
	// Commands like help and version return false.
	NeedsBackend() bool

	// Interactive returns true if the command takes over the terminal.
	// Logs from interactive commands never go to stderr.
	Interactive() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, endpoint, settings).
	// wf is nil if NeedsBackend() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, wf Workflow, args []string, out, errOut io.Writer) int
}
