package output_test

import (
	"bytes"
	"testing"

	"todo/internal/output"
	"todo/internal/service"
)

func TestFormatTask_Plain(t *testing.T) {
	tests := []struct {
		name string
		task service.Task
		want string
	}{
		{
			name: "open with due date",
			task: service.Task{ID: 1, Title: "Buy milk", Priority: service.PriorityHigh, Category: "Home", DueDate: "2024-01-05"},
			want: "   1  [ ] Buy milk  High @Home due:2024-01-05\n",
		},
		{
			name: "completed without due date",
			task: service.Task{ID: 12, Title: "Write report", Completed: true, Priority: service.PriorityLow, Category: "Work"},
			want: "  12  [x] Write report  Low @Work\n",
		},
		{
			name: "multiline title",
			task: service.Task{ID: 3, Title: "a\nb", Priority: service.PriorityMedium, Category: "General"},
			want: "   3  [ ] a b  Medium @General\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.Plain().FormatTask(&buf, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatTasks_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.Plain().FormatTasks(&buf, nil)
	if buf.String() != "no tasks found\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatTasks_Count(t *testing.T) {
	var buf bytes.Buffer
	output.Plain().FormatTasks(&buf, []service.Task{
		{ID: 1, Title: "one", Priority: service.PriorityMedium, Category: "General"},
	})
	want := "   1  [ ] one  Medium @General\n------------\n1 task\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	output.Plain().FormatTaskDetail(&buf, service.Task{
		ID: 2, Title: "Call mom", Priority: service.PriorityMedium, Category: "Home",
	})
	want := "ID:          2\n" +
		"Title:       Call mom\n" +
		"Description: -\n" +
		"Status:      incomplete\n" +
		"Priority:    Medium\n" +
		"Category:    Home\n" +
		"Due:         -\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatStats(t *testing.T) {
	var buf bytes.Buffer
	output.Plain().FormatStats(&buf, service.Stats{Total: 3, Completed: 1, Incomplete: 2})
	want := "total:      3\ncompleted:  1\nincomplete: 2\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestNewStyles_ColorDisabledIsPlain(t *testing.T) {
	task := service.Task{ID: 1, Title: "x", Priority: service.PriorityLow, Category: "General"}
	var plain, off bytes.Buffer
	output.Plain().FormatTask(&plain, task)
	output.NewStyles(false).FormatTask(&off, task)
	if plain.String() != off.String() {
		t.Errorf("expected identical output, got %q vs %q", plain.String(), off.String())
	}
}
