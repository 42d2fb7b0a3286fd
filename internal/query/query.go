// Package query implements keyword search and attribute filters over tasks.
// Functions never modify their input; results are freshly allocated.
package query

import (
	"strings"

	"todo/internal/service"
)

// Search returns tasks whose title or description contains keyword,
// case-insensitively. A blank keyword matches every task.
func Search(tasks []service.Task, keyword string) []service.Task {
	if strings.TrimSpace(keyword) == "" {
		return clone(tasks)
	}
	needle := strings.ToLower(keyword)
	return keep(tasks, func(t service.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle)
	})
}

// FilterByStatus returns tasks whose completed flag matches status
// ("complete" or "incomplete", case-insensitive).
func FilterByStatus(tasks []service.Task, status string) ([]service.Task, error) {
	completed, err := service.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return byStatus(tasks, completed), nil
}

// FilterByPriority returns tasks with the given priority (case-insensitive).
func FilterByPriority(tasks []service.Task, priority string) ([]service.Task, error) {
	p, err := service.ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	return byPriority(tasks, p), nil
}

// FilterByCategory returns tasks whose category equals category after
// trimming, case-insensitively.
func FilterByCategory(tasks []service.Task, category string) ([]service.Task, error) {
	c, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	return byCategory(tasks, c), nil
}

// Validate checks every active filter of c without applying any of them.
func Validate(c service.Criteria) error {
	if c.Status != nil {
		if _, err := service.ParseStatus(*c.Status); err != nil {
			return err
		}
	}
	if c.Priority != nil {
		if _, err := service.ParsePriority(*c.Priority); err != nil {
			return err
		}
	}
	if c.Category != nil {
		if _, err := parseCategory(*c.Category); err != nil {
			return err
		}
	}
	return nil
}

// Apply validates c, then narrows tasks by keyword, status, priority and
// category in that order. No match yields an empty, non-nil slice.
func Apply(tasks []service.Task, c service.Criteria) ([]service.Task, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	result := Search(tasks, c.Keyword)
	if c.Status != nil {
		completed, _ := service.ParseStatus(*c.Status)
		result = byStatus(result, completed)
	}
	if c.Priority != nil {
		p, _ := service.ParsePriority(*c.Priority)
		result = byPriority(result, p)
	}
	if c.Category != nil {
		cat, _ := parseCategory(*c.Category)
		result = byCategory(result, cat)
	}
	return result, nil
}

func parseCategory(category string) (string, error) {
	c := strings.TrimSpace(category)
	if c == "" {
		return "", &service.ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	return c, nil
}

func byStatus(tasks []service.Task, completed bool) []service.Task {
	return keep(tasks, func(t service.Task) bool { return t.Completed == completed })
}

func byPriority(tasks []service.Task, p service.Priority) []service.Task {
	return keep(tasks, func(t service.Task) bool {
		return strings.EqualFold(string(t.Priority), string(p))
	})
}

func byCategory(tasks []service.Task, category string) []service.Task {
	return keep(tasks, func(t service.Task) bool {
		return strings.EqualFold(strings.TrimSpace(t.Category), category)
	})
}

func keep(tasks []service.Task, pred func(service.Task) bool) []service.Task {
	result := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			result = append(result, t)
		}
	}
	return result
}

func clone(tasks []service.Task) []service.Task {
	result := make([]service.Task, len(tasks))
	copy(result, tasks)
	return result
}
