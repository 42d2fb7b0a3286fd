// Package testutil provides testing utilities.
package testutil

import (
	"testing"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

// NewStore creates a memory store holding tasks, added in order.
func NewStore(t *testing.T, tasks ...service.NewTask) *memory.Store {
	t.Helper()
	s := memory.New()
	for _, nt := range tasks {
		if _, err := s.AddTask(nt); err != nil {
			t.Fatalf("failed to seed task %q: %v", nt.Title, err)
		}
	}
	return s
}

// HomeWorkStore returns the three-task store used across command tests:
// 1 "Buy milk" High/Home, 2 "Write report" Low/Work, 3 "Call mom" Medium/Home.
func HomeWorkStore(t *testing.T) *memory.Store {
	t.Helper()
	return NewStore(t,
		service.NewTask{Title: "Buy milk", Description: "2 liters", Priority: "High", Category: "Home", DueDate: "2024-01-05"},
		service.NewTask{Title: "Write report", Description: "quarterly", Priority: "Low", Category: "Work", DueDate: "2024-01-01"},
		service.NewTask{Title: "Call mom", Priority: "Medium", Category: "Home"},
	)
}
