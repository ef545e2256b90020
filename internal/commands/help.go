package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd returns a help command listing the commands in r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"-h", "--help"} }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskboard help" }
func (c *HelpCmd) NeedsRemote() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	r := c.registry
	if r == nil {
		r = DefaultRegistry
	}

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  taskboard                    Open the interactive board")
	tw := tabwriter.NewWriter(out, 0, 4, 4, ' ', 0)
	for _, cmd := range r.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Filters:")
	fmt.Fprint(out, " ")
	for i, f := range board.Filters {
		sep := ","
		if i == len(board.Filters)-1 {
			sep = "\n"
		}
		fmt.Fprintf(out, " %s%s", f, sep)
	}

	fmt.Fprint(out, commonFlagsText)
	return exitcode.Success
}

const commonFlagsText = `
Common flags:
  --config <dir>     Override config directory
  --base-url <url>   Override the task API root
  --quiet            Suppress informational output
  --debug            Print debug logs (board: to debug.log in the config dir)

Tasks live only for the current run; nothing is saved.
`
