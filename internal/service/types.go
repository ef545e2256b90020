// Package service defines the backend-agnostic interface for the remote task API.
package service

// DefaultUserID is the owner sent with every created task.
const DefaultUserID = 1

// Task is a task record as the remote API returns it.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// NewTask is the body of a create request.
type NewTask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}
