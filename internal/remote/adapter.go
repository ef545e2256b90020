// Package remote connects the board to the remote task API. It fetches the
// initial page and creates tasks; edits and removals never leave the board.
package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"taskboard/internal/board"
	"taskboard/internal/logging"
	"taskboard/internal/service"
)

// FailureKind classifies remote failures.
type FailureKind int

const (
	// FetchFailure is a failed initial list fetch.
	FetchFailure FailureKind = iota + 1

	// CreateFailure is a failed create request.
	CreateFailure
)

func (k FailureKind) String() string {
	switch k {
	case FetchFailure:
		return "fetch"
	case CreateFailure:
		return "create"
	default:
		return "unknown"
	}
}

// Failure is a remote operation that did not succeed. Message is safe to
// show to the user; Err carries the cause.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s failed", f.Kind)
	}
	return fmt.Sprintf("%s failed: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Adapter performs the board's network operations.
type Adapter struct {
	svc   service.Service
	limit int
	log   logrus.FieldLogger
}

// NewAdapter creates an adapter fetching limit tasks on load.
func NewAdapter(svc service.Service, limit int, log logrus.FieldLogger) *Adapter {
	if log == nil {
		log = logging.Discard()
	}
	return &Adapter{svc: svc, limit: limit, log: log}
}

// FetchInitial requests the initial page of tasks. Loaded tasks have an
// empty description and are never recent. No retry is attempted.
func (a *Adapter) FetchInitial(ctx context.Context) ([]board.Task, error) {
	records, err := a.svc.ListTasks(ctx, a.limit)
	if err != nil {
		a.log.WithError(err).Debug("fetch tasks failed")
		return nil, &Failure{Kind: FetchFailure, Message: board.MsgLoadFailed, Err: err}
	}

	tasks := make([]board.Task, len(records))
	for i, r := range records {
		tasks[i] = board.Task{ID: r.ID, Title: r.Title, Completed: r.Completed}
	}
	a.log.WithField("count", len(tasks)).Debug("fetched tasks")
	return tasks, nil
}

// CreateRemote creates a task. The returned task carries the server's ID,
// title and completed flag; merging the local description and marking it
// recent is up to the caller.
func (a *Adapter) CreateRemote(ctx context.Context, title string, completed bool) (board.Task, error) {
	created, err := a.svc.CreateTask(ctx, service.NewTask{
		Title:     title,
		Completed: completed,
		UserID:    service.DefaultUserID,
	})
	if err != nil {
		a.log.WithError(err).Debug("create task failed")
		return board.Task{}, &Failure{Kind: CreateFailure, Message: board.MsgCreateFailed, Err: err}
	}
	a.log.WithField("id", created.ID).Debug("created task")
	if created.Title == "" {
		created.Title = title
	}
	return board.Task{ID: created.ID, Title: created.Title, Completed: created.Completed}, nil
}

// Message returns the user-facing text for an error returned by the adapter.
func Message(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
