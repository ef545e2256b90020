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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
// The task is posted to the API and printed; it is not kept anywhere.
type AddCmd struct {
	description string
	completed   bool
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

// SetCompleted sets the completed flag (for testing).
func (c *AddCmd) SetCompleted(completed bool) {
	c.completed = completed
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskboard add [--description <text>] [--completed] <title...>"
}
func (c *AddCmd) NeedsRemote() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.BoolVar(&c.completed, "completed", false, "")
	fs.BoolVar(&c.completed, "c", false, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	session := board.NewSession()
	session.OpenCreate()

	title := strings.Join(args, " ")
	res, err := session.Submit(title, c.description, c.completed)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", board.TitleMessage(err))
		return exitcode.UserError
	}

	req := *res.Create
	created, err := remote.NewAdapter(svc, cfg.Limit, cfg.Logger()).CreateRemote(ctx, req.Title, req.Completed)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", remote.Message(err))
		return exitcode.BackendError
	}

	session.CreateSucceeded(req, created)
	frame := session.Frame()
	output.FormatListView(out, frame.List)
	if !cfg.Quiet {
		fmt.Fprintln(out, frame.Notice)
	}
	return exitcode.Success
}
