// Package service defines the backend-agnostic interface for task operations.
package service

// Service defines the interface for task backend operations.
// Commands only talk to tasks through this interface.
// Every returned Task or slice is a copy; callers cannot alias backend state.
type Service interface {
	// AddTask validates t, assigns the next id and appends the task.
	AddTask(t NewTask) (Task, error)

	// FindTask looks a task up by id. The bool is false when absent.
	FindTask(id int) (Task, bool)

	// UpdateTask replaces the title and/or description of a task.
	UpdateTask(id int, u TaskUpdate) (Task, error)

	// DeleteTask removes a task permanently. Ids are never reused.
	DeleteTask(id int) error

	// MarkComplete sets completed=true.
	// Returns AlreadyInStateError if the task is already complete.
	MarkComplete(id int) (Task, error)

	// MarkIncomplete sets completed=false.
	// Returns AlreadyInStateError if the task is already incomplete.
	MarkIncomplete(id int) (Task, error)

	// ListTasks returns all tasks in store order.
	ListTasks() []Task

	// RecentTasks returns the last n tasks in store order.
	RecentTasks(n int) []Task

	// Stats returns completion counts.
	Stats() Stats

	// Search matches keyword against title or description (case-insensitive).
	// A blank keyword matches every task.
	Search(keyword string) []Task

	// FilterByStatus returns tasks matching "complete" or "incomplete".
	FilterByStatus(status string) ([]Task, error)

	// FilterByPriority returns tasks with the given priority.
	FilterByPriority(priority string) ([]Task, error)

	// FilterByCategory returns tasks in the given category (case-insensitive, trimmed).
	FilterByCategory(category string) ([]Task, error)

	// SearchAndFilter validates every active criterion, then applies
	// search, status, priority and category in that order.
	SearchAndFilter(c Criteria) ([]Task, error)
}
