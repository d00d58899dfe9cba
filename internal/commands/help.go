package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"itasks/internal/config"
	"itasks/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "itasks help" }
func (c *HelpCmd) NeedsBackend() bool { return false }
func (c *HelpCmd) Interactive() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, wf Workflow, args []string, out, errOut io.Writer) int {
	writeHelp(out, DefaultRegistry)
	return exitcode.Success
}

// writeHelp lists the commands of r, then the common flags.
func writeHelp(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %-46s %s\n", "itasks", "Open the task list screen")
	for _, cmd := range r.All() {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %-46s %s\n", cmd.Usage(), synopsis)
	}
	fmt.Fprint(w, commonFlagsHelp)
}

const commonFlagsHelp = `
Common flags (after the command name):
  --config <dir>     Override config directory
  --endpoint <url>   Task collection URL (empty or non-https: simulated)
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr (ui: to itasks.log)
`
