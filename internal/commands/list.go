package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/remote"
	"taskboard/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// It loads the initial tasks and prints the projected card list.
type ListCmd struct {
	filter string
	search string
}

// SetFilter sets the filter name (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

// SetSearch sets the search text (for testing).
func (c *ListCmd) SetSearch(q string) {
	c.search = q
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskboard list [--filter <f>] [--search <text>]" }
func (c *ListCmd) NeedsRemote() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	filter, err := board.ParseFilter(strings.TrimSpace(c.filter))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Positional words are treated as search text.
	query := c.search
	if len(args) > 0 {
		query = strings.TrimSpace(query + " " + strings.Join(args, " "))
	}

	session, code := loadSession(ctx, cfg, svc, errOut)
	if code != exitcode.Success {
		return code
	}
	session.SetFilter(filter)
	session.SetQuery(query)

	frame := session.Frame()
	output.FormatListView(out, frame.List)
	if !cfg.Quiet {
		output.FormatSummary(out, frame.Summary)
	}
	return exitcode.Success
}

// loadSession fetches the initial tasks into a fresh session.
func loadSession(ctx context.Context, cfg *config.Config, svc service.Service, errOut io.Writer) (*board.Session, int) {
	session := board.NewSession()
	session.BeginLoad()

	tasks, err := remote.NewAdapter(svc, cfg.Limit, cfg.Logger()).FetchInitial(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", remote.Message(err))
		return nil, exitcode.BackendError
	}
	session.LoadSucceeded(tasks)
	return session, exitcode.Success
}
