// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"taskboard/internal/service"
)

// CreatedID is the ID the fake assigns to every created task, like the
// mock API it stands in for.
const CreatedID = 201

// FakeService is an in-memory implementation of service.Service for testing.
// It behaves like the mock API: creates are echoed back but never show up
// in later listings.
type FakeService struct {
	mu    sync.Mutex
	tasks []service.Task

	// Recorded calls
	ListLimits []int
	Created    []service.NewTask

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error

	// CreateIDs, when non-empty, supplies the IDs for successive creates
	// instead of CreatedID.
	CreateIDs []int
}

// NewFakeService creates a FakeService holding the given tasks.
func NewFakeService(tasks ...service.Task) *FakeService {
	return &FakeService{tasks: append([]service.Task(nil), tasks...)}
}

// AddTask adds a task to the remote listing.
func (f *FakeService) AddTask(id int, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		UserID:    service.DefaultUserID,
	})
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, limit int) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListLimits = append(f.ListLimits, limit)

	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	n := len(f.tasks)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]service.Task, n)
	copy(result, f.tasks[:n])
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, task service.NewTask) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, task)

	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	id := CreatedID
	if len(f.CreateIDs) > 0 {
		id = f.CreateIDs[0]
		f.CreateIDs = f.CreateIDs[1:]
	}
	return service.Task{
		ID:        id,
		Title:     task.Title,
		Completed: task.Completed,
		UserID:    task.UserID,
	}, nil
}

// DemoTasks returns a service preloaded with a small fixed listing.
func DemoTasks() *FakeService {
	f := NewFakeService()
	f.AddTask(1, "delectus aut autem", false)
	f.AddTask(2, "quis ut nam facilis et officia qui", false)
	f.AddTask(3, "fugiat veniam minus", false)
	f.AddTask(4, "et porro tempora", true)
	return f
}
