// Package service defines the backend-agnostic interface for the remote task API.
package service

import "context"

// Service defines the remote operations the board needs.
// All HTTP calls go through this interface.
// Commands and the board never import the HTTP backend directly.
type Service interface {
	// ListTasks returns up to limit tasks in API order.
	ListTasks(ctx context.Context, limit int) ([]Task, error)

	// CreateTask creates a task and returns the record the API sent back,
	// including its assigned ID.
	CreateTask(ctx context.Context, task NewTask) (Task, error)
}
