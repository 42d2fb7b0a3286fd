// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
)

// Styles renders task fields. A zero Styles prints plain text.
type Styles struct {
	enabled bool

	id        lipgloss.Style
	title     lipgloss.Style
	done      lipgloss.Style
	open      lipgloss.Style
	label     lipgloss.Style
	dim       lipgloss.Style
	category  lipgloss.Style
	due       lipgloss.Style
	priority  map[service.Priority]lipgloss.Style
	separator lipgloss.Style
}

// Plain returns Styles that never emit escape sequences.
func Plain() Styles {
	return Styles{}
}

// NewStyles returns colored styles when color is true, plain ones otherwise.
func NewStyles(color bool) Styles {
	if !color {
		return Plain()
	}
	bold := lipgloss.NewStyle().Bold(true)
	return Styles{
		enabled:  true,
		id:       bold.Foreground(lipgloss.Color("6")),
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		done:     bold.Foreground(lipgloss.Color("2")),
		open:     bold.Foreground(lipgloss.Color("3")),
		label:    bold.Foreground(lipgloss.Color("6")),
		dim:      lipgloss.NewStyle().Faint(true),
		category: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		due:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		priority: map[service.Priority]lipgloss.Style{
			service.PriorityHigh:   bold.Foreground(lipgloss.Color("9")),
			service.PriorityMedium: bold.Foreground(lipgloss.Color("208")),
			service.PriorityLow:    bold.Foreground(lipgloss.Color("12")),
		},
		separator: lipgloss.NewStyle().Faint(true),
	}
}

func (s Styles) paint(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s Styles) paintPriority(p service.Priority) string {
	if !s.enabled {
		return string(p)
	}
	st, ok := s.priority[p]
	if !ok {
		st = s.priority[service.PriorityMedium]
	}
	return st.Render(string(p))
}

// ListSeparator is the separator line above the task count.
const ListSeparator = "------------"

// FormatTask formats a task line.
// Format: "{ID:>4}  [x] {TITLE}  {PRIORITY} @{CATEGORY}[ due:{DATE}]\n"
func (s Styles) FormatTask(w io.Writer, task service.Task) {
	mark := s.paint(s.open, "[ ]")
	if task.Completed {
		mark = s.paint(s.done, "[x]")
	}
	line := fmt.Sprintf("%s  %s %s  %s %s",
		s.paint(s.id, fmt.Sprintf("%4d", task.ID)),
		mark,
		s.paint(s.title, normalizeTitle(task.Title)),
		s.paintPriority(task.Priority),
		s.paint(s.category, "@"+task.Category),
	)
	if task.HasDueDate() {
		line += " " + s.paint(s.due, "due:"+task.DueDate)
	}
	fmt.Fprintln(w, line)
}

// FormatTasks formats a task list followed by a count line.
// An empty list prints "no tasks found" instead.
func (s Styles) FormatTasks(w io.Writer, tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks found")
		return
	}
	for _, task := range tasks {
		s.FormatTask(w, task)
	}
	fmt.Fprintln(w, s.paint(s.separator, ListSeparator))
	fmt.Fprintf(w, "%d %s\n", len(tasks), plural(len(tasks), "task", "tasks"))
}

// FormatTaskDetail formats every field of a task, one per line.
func (s Styles) FormatTaskDetail(w io.Writer, task service.Task) {
	due := task.DueDate
	if !task.HasDueDate() {
		due = "-"
	}
	desc := task.Description
	if strings.TrimSpace(desc) == "" {
		desc = "-"
	}
	rows := []struct {
		label string
		value string
	}{
		{"ID", s.paint(s.id, fmt.Sprint(task.ID))},
		{"Title", s.paint(s.title, normalizeTitle(task.Title))},
		{"Description", s.paint(s.dim, desc)},
		{"Status", task.StatusLabel()},
		{"Priority", s.paintPriority(task.Priority)},
		{"Category", s.paint(s.category, task.Category)},
		{"Due", s.paint(s.due, due)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", s.paint(s.label, fmt.Sprintf("%-12s", r.label+":")), r.value)
	}
}

// FormatStats formats the completion summary.
func (s Styles) FormatStats(w io.Writer, st service.Stats) {
	fmt.Fprintf(w, "%s %d\n", s.paint(s.label, "total:     "), st.Total)
	fmt.Fprintf(w, "%s %d\n", s.paint(s.label, "completed: "), st.Completed)
	fmt.Fprintf(w, "%s %d\n", s.paint(s.label, "incomplete:"), st.Incomplete)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
