package sorting

import (
	"strings"

	"todo/internal/service"
)

// Key names a sort order.
type Key string

const (
	KeyNone     Key = ""
	KeyTitle    Key = "title"
	KeyPriority Key = "priority"
	KeyDueDate  Key = "due"
)

// ParseKey resolves a sort key name. An empty name means no sorting.
func ParseKey(name string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return KeyNone, nil
	case "title", "name":
		return KeyTitle, nil
	case "priority":
		return KeyPriority, nil
	case "due", "due_date", "date":
		return KeyDueDate, nil
	}
	return KeyNone, &service.ValidationError{Field: "sort key", Reason: "must be one of: title, priority, due"}
}

// Apply returns tasks sorted by k. KeyNone returns an unsorted copy.
func (k Key) Apply(tasks []service.Task) []service.Task {
	switch k {
	case KeyTitle:
		return ByTitle(tasks)
	case KeyPriority:
		return ByPriority(tasks)
	case KeyDueDate:
		return ByDueDate(tasks)
	}
	return clone(tasks)
}
