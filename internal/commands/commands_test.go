package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:     t.TempDir(),
		BaseURL: config.DefaultBaseURL,
		Limit:   config.DefaultLimit,
		Timeout: config.DefaultTimeout,
		Quiet:   quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskboard 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "taskboard list", "completed, pending, recent"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for list command
func TestListCommand_All(t *testing.T) {
	svc := testutil.DemoTasks()

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_all", stdout)

	if len(svc.ListLimits) != 1 || svc.ListLimits[0] != config.DefaultLimit {
		t.Errorf("expected one fetch with limit %d, got %v", config.DefaultLimit, svc.ListLimits)
	}
}

func TestListCommand_Pending(t *testing.T) {
	cmd := &commands.ListCmd{}
	cmd.SetFilter("pending")

	stdout, _, code := runCommand(t, cmd, testutil.DemoTasks(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	testutil.GoldenString(t, "list_pending", stdout)
}

func TestListCommand_SearchQuiet(t *testing.T) {
	cmd := &commands.ListCmd{}
	cmd.SetSearch("VENIAM")

	stdout, _, code := runCommand(t, cmd, testutil.DemoTasks(), nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   3  ○ fugiat veniam minus\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_SearchFromArgs(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.ListCmd{}, testutil.DemoTasks(), []string{"porro"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   4  ✔ et porro tempora\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_NoMatches(t *testing.T) {
	cmd := &commands.ListCmd{}
	cmd.SetFilter("recent")

	stdout, _, code := runCommand(t, cmd, testutil.DemoTasks(), nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "No tasks to show.\n" {
		t.Errorf("expected placeholder, got %q", stdout)
	}
}

func TestListCommand_UnknownFilter(t *testing.T) {
	svc := testutil.DemoTasks()
	cmd := &commands.ListCmd{}
	cmd.SetFilter("bogus")

	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: unknown filter: bogus\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.ListLimits) != 0 {
		t.Error("expected no fetch for an invalid filter")
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.DemoTasks()
	svc.ListTasksErr = errors.New("connection refused")

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: There was a problem loading tasks...\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for summary command
func TestSummaryCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.SummaryCmd{}, testutil.DemoTasks(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "total 4  done 1  pending 3\n" {
		t.Errorf("unexpected summary %q", stdout)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	cmd := &commands.AddCmd{}
	cmd.SetDescription("two liters")

	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := " 201  ○ Buy milk [recent]\n        two liters\nTask created successfully!\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	if len(svc.Created) != 1 {
		t.Fatalf("expected 1 create request, got %d", len(svc.Created))
	}
	if got := svc.Created[0]; got.Title != "Buy milk" || got.Completed || got.UserID != 1 {
		t.Errorf("unexpected create request %+v", got)
	}
}

func TestAddCommand_CompletedQuiet(t *testing.T) {
	svc := testutil.NewFakeService()
	cmd := &commands.AddCmd{}
	cmd.SetCompleted(true)

	stdout, _, code := runCommand(t, cmd, svc, []string{"Water plants"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := " 201  ✔ Water plants [recent]\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if len(svc.Created) != 1 || !svc.Created[0].Completed {
		t.Errorf("expected a completed create request, got %+v", svc.Created)
	}
}

func TestAddCommand_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no title", nil, "error: Title is required.\n"},
		{"blank title", []string{"   "}, "error: Title is required.\n"},
		{"too short", []string{"ab"}, "error: Title must have at least 3 characters.\n"},
		{"short after trim", []string{" ab "}, "error: Title must have at least 3 characters.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()

			stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
			if len(svc.Created) != 0 {
				t.Error("expected no create request")
			}
		})
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("server returned status 500")

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy milk"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: There was an error creating the task.\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for board command
func TestBoardCommand_RejectsArgs(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.BoardCmd{}, testutil.DemoTasks(), []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for registry
func TestDefaultRegistry(t *testing.T) {
	for _, name := range []string{"board", "list", "ls", "add", "create", "summary", "help", "version"} {
		if _, ok := commands.DefaultRegistry.Find(name); !ok {
			t.Errorf("expected command %q to be registered", name)
		}
	}
	if got := len(commands.DefaultRegistry.All()); got != 6 {
		t.Errorf("expected 6 commands, got %d", got)
	}
}

func TestRegistry_DuplicateAlias(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.ListCmd{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegistry_FindIgnoresCase(t *testing.T) {
	cmd, ok := commands.DefaultRegistry.Find("LIST")
	if !ok || cmd.Name() != "list" {
		t.Errorf("expected LIST to resolve to list, got %v", cmd)
	}
}

func TestHelpCommand_ListsRegistry(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.VersionCmd{}); err != nil {
		t.Fatal(err)
	}

	stdout, _, code := runCommand(t, commands.NewHelpCmd(r), nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "taskboard version") {
		t.Errorf("expected version usage in help, got %q", stdout)
	}
	if strings.Contains(stdout, "taskboard list") {
		t.Errorf("help should only list registered commands, got %q", stdout)
	}
}
