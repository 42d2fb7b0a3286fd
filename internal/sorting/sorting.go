// Package sorting produces reordered copies of task lists.
// Every sort is stable and leaves its input untouched.
package sorting

import (
	"sort"
	"strings"

	"todo/internal/service"
)

// priorityRank orders priorities; anything else ranks as Medium.
var priorityRank = map[service.Priority]int{
	service.PriorityHigh:   0,
	service.PriorityMedium: 1,
	service.PriorityLow:    2,
}

// Rank returns the sort rank of p.
func Rank(p service.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return priorityRank[service.PriorityMedium]
}

// ByTitle sorts by title, case-insensitively.
func ByTitle(tasks []service.Task) []service.Task {
	out := clone(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}

// ByPriority sorts High, Medium, Low.
func ByPriority(tasks []service.Task) []service.Task {
	out := clone(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return Rank(out[i].Priority) < Rank(out[j].Priority)
	})
	return out
}

// ByDueDate sorts dated tasks by their due date string, then appends
// undated tasks in their original order.
func ByDueDate(tasks []service.Task) []service.Task {
	dated := make([]service.Task, 0, len(tasks))
	var undated []service.Task
	for _, t := range tasks {
		if t.HasDueDate() {
			dated = append(dated, t)
		} else {
			undated = append(undated, t)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].DueDate < dated[j].DueDate
	})
	return append(dated, undated...)
}

func clone(tasks []service.Task) []service.Task {
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out
}
