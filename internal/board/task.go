// Package board holds the in-memory task board: the task store, the
// filter/search projection, the create/edit form and the render data
// derived from them. Nothing in this package touches the network or a
// terminal.
package board

// Task is one to-do item on the board.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool

	// IsRecent is true only for tasks created during this session that
	// have not been edited since.
	IsRecent bool
}
