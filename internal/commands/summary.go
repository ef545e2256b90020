package commands

import (
	"context"
	"flag"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/service"
)

func init() {
	Register(&SummaryCmd{})
}

// SummaryCmd implements the summary command.
type SummaryCmd struct{}

func (c *SummaryCmd) Name() string      { return "summary" }
func (c *SummaryCmd) Aliases() []string { return []string{"stats"} }
func (c *SummaryCmd) Synopsis() string  { return "Print task counters" }
func (c *SummaryCmd) Usage() string     { return "taskboard summary" }
func (c *SummaryCmd) NeedsRemote() bool { return true }

func (c *SummaryCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SummaryCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	session, code := loadSession(ctx, cfg, svc, errOut)
	if code != exitcode.Success {
		return code
	}
	output.FormatCounts(out, session.Frame().Summary)
	return exitcode.Success
}
