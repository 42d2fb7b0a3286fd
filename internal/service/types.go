// Package service defines the backend-agnostic interface for task operations.
package service

import "strings"

// Priority is a task priority label.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// DefaultPriority is assigned when a task is added without a priority.
const DefaultPriority = PriorityMedium

// DefaultCategory is assigned when a task is added without a category.
const DefaultCategory = "General"

// Priorities lists the valid priorities in rank order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority returns the canonical priority for s (case-insensitive, trimmed).
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", &ValidationError{Field: "priority", Reason: "must be one of: High, Medium, Low"}
}

// Status values accepted by status filters.
const (
	StatusComplete   = "complete"
	StatusIncomplete = "incomplete"
)

// ParseStatus reports the completed flag selected by a status filter value.
func ParseStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusComplete:
		return true, nil
	case StatusIncomplete:
		return false, nil
	}
	return false, &ValidationError{Field: "status", Reason: "must be 'complete' or 'incomplete'"}
}

// Task represents a single task item.
// Tasks are values: mutations produce a replacement with the same ID.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	Category    string
	DueDate     string // empty when the task has no due date
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// StatusLabel returns "complete" or "incomplete".
func (t Task) StatusLabel() string {
	if t.Completed {
		return StatusComplete
	}
	return StatusIncomplete
}

// NewTask holds the fields supplied when adding a task.
// Zero-valued Priority and Category fall back to the defaults.
type NewTask struct {
	Title       string
	Description string
	Priority    string
	Category    string
	DueDate     string
}

// TaskUpdate describes an update. A nil field leaves the value unchanged.
// A non-nil Description replaces the description, even with "".
// A non-nil but blank Title is ignored.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// Criteria combines a keyword search with optional filters.
// A nil filter is inactive.
type Criteria struct {
	Keyword  string
	Status   *string
	Priority *string
	Category *string
}

// Stats summarizes the store.
type Stats struct {
	Total      int
	Completed  int
	Incomplete int
}
