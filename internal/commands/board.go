package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/remote"
	"taskboard/internal/service"
	"taskboard/internal/tui"
)

func init() {
	Register(&BoardCmd{})
}

// BoardCmd implements the interactive board.
// Handles both `taskboard` (no args) and `taskboard board`.
type BoardCmd struct{}

func (c *BoardCmd) Name() string       { return "board" }
func (c *BoardCmd) Aliases() []string  { return []string{"ui"} }
func (c *BoardCmd) Synopsis() string   { return "Open the interactive board" }
func (c *BoardCmd) Usage() string      { return "taskboard board" }
func (c *BoardCmd) NeedsRemote() bool  { return true }
func (c *BoardCmd) OwnsTerminal() bool { return true }

func (c *BoardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BoardCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	log := cfg.Logger()
	log.WithField("base_url", cfg.BaseURL).Debug("board starting")

	err := tui.Run(ctx, remote.NewAdapter(svc, cfg.Limit, log), log, os.Stdin, out)
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
