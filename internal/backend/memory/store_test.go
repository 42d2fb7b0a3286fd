package memory_test

import (
	"errors"
	"testing"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

func strPtr(s string) *string { return &s }

func mustAdd(t *testing.T, s *memory.Store, nt service.NewTask) service.Task {
	t.Helper()
	task, err := s.AddTask(nt)
	if err != nil {
		t.Fatalf("AddTask(%q): %v", nt.Title, err)
	}
	return task
}

func TestAddTask_SequentialIDs(t *testing.T) {
	s := memory.New()

	for want := 1; want <= 3; want++ {
		task := mustAdd(t, s, service.NewTask{Title: "task", Description: "desc"})
		if task.ID != want {
			t.Errorf("expected id %d, got %d", want, task.ID)
		}
		if task.Completed {
			t.Errorf("task %d should start incomplete", task.ID)
		}
	}
}

func TestAddTask_Defaults(t *testing.T) {
	s := memory.New()
	task := mustAdd(t, s, service.NewTask{Title: "Buy milk"})

	if task.Priority != service.PriorityMedium {
		t.Errorf("expected default priority Medium, got %q", task.Priority)
	}
	if task.Category != "General" {
		t.Errorf("expected default category General, got %q", task.Category)
	}
	if task.HasDueDate() {
		t.Errorf("expected no due date, got %q", task.DueDate)
	}
}

func TestAddTask_NormalizesPriority(t *testing.T) {
	s := memory.New()
	task := mustAdd(t, s, service.NewTask{Title: "x", Priority: "high", Category: " Work "})

	if task.Priority != service.PriorityHigh {
		t.Errorf("expected High, got %q", task.Priority)
	}
	if task.Category != "Work" {
		t.Errorf("expected trimmed category, got %q", task.Category)
	}
}

func TestAddTask_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   service.NewTask
	}{
		{"empty title", service.NewTask{Title: ""}},
		{"whitespace title", service.NewTask{Title: "   "}},
		{"bad priority", service.NewTask{Title: "x", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.New()
			_, err := s.AddTask(tt.in)
			if !errors.Is(err, service.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(s.ListTasks()) != 0 {
				t.Error("failed add should not store a task")
			}
		})
	}
}

func TestAddTask_FailedAddDoesNotConsumeID(t *testing.T) {
	s := memory.New()
	_, _ = s.AddTask(service.NewTask{Title: " "})
	task := mustAdd(t, s, service.NewTask{Title: "first"})
	if task.ID != 1 {
		t.Errorf("expected id 1, got %d", task.ID)
	}
}

func TestDeleteTask(t *testing.T) {
	s := memory.New()
	mustAdd(t, s, service.NewTask{Title: "one"})
	mustAdd(t, s, service.NewTask{Title: "two"})
	mustAdd(t, s, service.NewTask{Title: "three"})

	if err := s.DeleteTask(2); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	if _, ok := s.FindTask(2); ok {
		t.Error("deleted task still found")
	}
	remaining := s.ListTasks()
	if len(remaining) != 2 || remaining[0].ID != 1 || remaining[1].ID != 3 {
		t.Errorf("unexpected remaining tasks: %+v", remaining)
	}

	// Ids are never reused.
	task := mustAdd(t, s, service.NewTask{Title: "four"})
	if task.ID != 4 {
		t.Errorf("expected id 4 after delete, got %d", task.ID)
	}
}

func TestDeleteTask_Errors(t *testing.T) {
	s := memory.New()
	mustAdd(t, s, service.NewTask{Title: "one"})

	if err := s.DeleteTask(99); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if err := s.DeleteTask(0); !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected validation error for id 0, got %v", err)
	}

	var nf *service.NotFoundError
	if err := s.DeleteTask(7); !errors.As(err, &nf) || nf.ID != 7 {
		t.Errorf("expected NotFoundError{7}, got %v", err)
	}
}

func TestMarkComplete_RoundTrip(t *testing.T) {
	s := memory.New()
	orig := mustAdd(t, s, service.NewTask{Title: "x", Description: "d", Priority: "Low", Category: "Home", DueDate: "2024-01-01"})

	done, err := s.MarkComplete(orig.ID)
	if err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if !done.Completed {
		t.Error("expected completed")
	}

	if _, err := s.MarkComplete(orig.ID); !errors.Is(err, service.ErrAlreadyInState) {
		t.Errorf("expected already-in-state on second complete, got %v", err)
	}

	back, err := s.MarkIncomplete(orig.ID)
	if err != nil {
		t.Fatalf("MarkIncomplete: %v", err)
	}
	if back != orig {
		t.Errorf("round trip changed task: %+v vs %+v", back, orig)
	}

	if _, err := s.MarkIncomplete(orig.ID); !errors.Is(err, service.ErrAlreadyInState) {
		t.Errorf("expected already-in-state on second incomplete, got %v", err)
	}
}

func TestMark_Errors(t *testing.T) {
	s := memory.New()
	if _, err := s.MarkComplete(1); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := s.MarkIncomplete(-3); !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateTask(t *testing.T) {
	tests := []struct {
		name      string
		update    service.TaskUpdate
		wantTitle string
		wantDesc  string
	}{
		{"no changes", service.TaskUpdate{}, "Buy milk", "2 liters"},
		{"new title", service.TaskUpdate{Title: strPtr("  Buy oat milk ")}, "Buy oat milk", "2 liters"},
		{"blank title kept", service.TaskUpdate{Title: strPtr("   ")}, "Buy milk", "2 liters"},
		{"clear description", service.TaskUpdate{Description: strPtr("")}, "Buy milk", ""},
		{"both", service.TaskUpdate{Title: strPtr("Eggs"), Description: strPtr("dozen")}, "Eggs", "dozen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.New()
			mustAdd(t, s, service.NewTask{Title: "first"})
			orig := mustAdd(t, s, service.NewTask{Title: "Buy milk", Description: "2 liters", Priority: "High", Category: "Home", DueDate: "2024-01-05"})
			mustAdd(t, s, service.NewTask{Title: "third"})
			if _, err := s.MarkComplete(orig.ID); err != nil {
				t.Fatal(err)
			}

			got, err := s.UpdateTask(orig.ID, tt.update)
			if err != nil {
				t.Fatalf("UpdateTask: %v", err)
			}

			want := orig
			want.Completed = true
			want.Title = tt.wantTitle
			want.Description = tt.wantDesc
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}

			// Record stays in place.
			all := s.ListTasks()
			if all[1] != want {
				t.Errorf("stored record %+v, want %+v", all[1], want)
			}
		})
	}
}

func TestUpdateTask_Errors(t *testing.T) {
	s := memory.New()
	if _, err := s.UpdateTask(1, service.TaskUpdate{}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := s.UpdateTask(0, service.TaskUpdate{}); !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListTasks_ReturnsCopy(t *testing.T) {
	s := memory.New()
	mustAdd(t, s, service.NewTask{Title: "one"})

	list := s.ListTasks()
	list[0].Title = "mutated"

	task, _ := s.FindTask(1)
	if task.Title != "one" {
		t.Error("ListTasks exposes store state")
	}
}

func TestRecentTasks(t *testing.T) {
	s := memory.New()
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		mustAdd(t, s, service.NewTask{Title: title})
	}

	got := s.RecentTasks(5)
	if len(got) != 5 || got[0].Title != "c" || got[4].Title != "g" {
		t.Errorf("unexpected recent tasks: %+v", got)
	}
	if got := s.RecentTasks(10); len(got) != 7 {
		t.Errorf("expected all 7 tasks, got %d", len(got))
	}
	if got := s.RecentTasks(0); len(got) != 0 {
		t.Errorf("expected none, got %d", len(got))
	}
}

func TestStats(t *testing.T) {
	s := memory.New()
	mustAdd(t, s, service.NewTask{Title: "a"})
	mustAdd(t, s, service.NewTask{Title: "b"})
	mustAdd(t, s, service.NewTask{Title: "c"})
	if _, err := s.MarkComplete(2); err != nil {
		t.Fatal(err)
	}

	want := service.Stats{Total: 3, Completed: 1, Incomplete: 2}
	if got := s.Stats(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSearchAndFilter_Scenario(t *testing.T) {
	s := memory.New()
	mustAdd(t, s, service.NewTask{Title: "Buy milk", Priority: "High", Category: "Home"})
	mustAdd(t, s, service.NewTask{Title: "Write report", Priority: "Low", Category: "Work"})
	mustAdd(t, s, service.NewTask{Title: "Call mom", Priority: "Medium", Category: "Home"})

	got, err := s.SearchAndFilter(service.Criteria{Category: strPtr("Home")})
	if err != nil {
		t.Fatalf("SearchAndFilter: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("expected tasks [1 3], got %+v", got)
	}

	if _, err := s.FilterByPriority("bogus"); !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	high, err := s.FilterByPriority("HIGH")
	if err != nil || len(high) != 1 || high[0].ID != 1 {
		t.Errorf("FilterByPriority(HIGH) = %+v, %v", high, err)
	}

	work, err := s.FilterByCategory("work")
	if err != nil || len(work) != 1 || work[0].ID != 2 {
		t.Errorf("FilterByCategory(work) = %+v, %v", work, err)
	}

	open, err := s.FilterByStatus("incomplete")
	if err != nil || len(open) != 3 {
		t.Errorf("FilterByStatus(incomplete) = %+v, %v", open, err)
	}

	if got := s.Search("MOM"); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Search(MOM) = %+v", got)
	}
}
