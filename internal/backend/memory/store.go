// Package memory implements the service.Service interface with an
// in-process task list. State lives only as long as the Store value.
package memory

import (
	"strings"

	"todo/internal/query"
	"todo/internal/service"
)

// Store implements service.Service.
// It is not safe for concurrent use; a session owns exactly one Store.
type Store struct {
	tasks  []service.Task
	nextID int
}

// New creates an empty store. The first task gets id 1.
func New() *Store {
	return &Store{nextID: 1}
}

// AddTask implements service.Service.
func (s *Store) AddTask(t service.NewTask) (service.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return service.Task{}, &service.ValidationError{Field: "title", Reason: "cannot be empty"}
	}

	priority := service.DefaultPriority
	if strings.TrimSpace(t.Priority) != "" {
		p, err := service.ParsePriority(t.Priority)
		if err != nil {
			return service.Task{}, err
		}
		priority = p
	}

	category := strings.TrimSpace(t.Category)
	if category == "" {
		category = service.DefaultCategory
	}

	task := service.Task{
		ID:          s.nextID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    priority,
		Category:    category,
		DueDate:     strings.TrimSpace(t.DueDate),
	}
	s.tasks = append(s.tasks, task)
	s.nextID++
	return task, nil
}

// FindTask implements service.Service.
func (s *Store) FindTask(id int) (service.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return service.Task{}, false
	}
	return s.tasks[i], true
}

// UpdateTask implements service.Service.
func (s *Store) UpdateTask(id int, u service.TaskUpdate) (service.Task, error) {
	i, err := s.lookup(id)
	if err != nil {
		return service.Task{}, err
	}

	task := s.tasks[i]
	if u.Title != nil && strings.TrimSpace(*u.Title) != "" {
		task.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		task.Description = *u.Description
	}

	s.tasks[i] = task
	return task, nil
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(id int) error {
	i, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// MarkComplete implements service.Service.
func (s *Store) MarkComplete(id int) (service.Task, error) {
	return s.setCompleted(id, true)
}

// MarkIncomplete implements service.Service.
func (s *Store) MarkIncomplete(id int) (service.Task, error) {
	return s.setCompleted(id, false)
}

func (s *Store) setCompleted(id int, completed bool) (service.Task, error) {
	i, err := s.lookup(id)
	if err != nil {
		return service.Task{}, err
	}

	task := s.tasks[i]
	if task.Completed == completed {
		return service.Task{}, &service.AlreadyInStateError{ID: id, Completed: completed}
	}
	task.Completed = completed
	s.tasks[i] = task
	return task, nil
}

// ListTasks implements service.Service.
func (s *Store) ListTasks() []service.Task {
	return s.snapshot()
}

// RecentTasks implements service.Service.
func (s *Store) RecentTasks(n int) []service.Task {
	if n <= 0 {
		return []service.Task{}
	}
	all := s.snapshot()
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}

// Stats implements service.Service.
func (s *Store) Stats() service.Stats {
	st := service.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Incomplete = st.Total - st.Completed
	return st
}

// Search implements service.Service.
func (s *Store) Search(keyword string) []service.Task {
	return query.Search(s.tasks, keyword)
}

// FilterByStatus implements service.Service.
func (s *Store) FilterByStatus(status string) ([]service.Task, error) {
	return query.FilterByStatus(s.tasks, status)
}

// FilterByPriority implements service.Service.
func (s *Store) FilterByPriority(priority string) ([]service.Task, error) {
	return query.FilterByPriority(s.tasks, priority)
}

// FilterByCategory implements service.Service.
func (s *Store) FilterByCategory(category string) ([]service.Task, error) {
	return query.FilterByCategory(s.tasks, category)
}

// SearchAndFilter implements service.Service.
func (s *Store) SearchAndFilter(c service.Criteria) ([]service.Task, error) {
	return query.Apply(s.tasks, c)
}

// lookup validates id and returns its index, or a typed error.
func (s *Store) lookup(id int) (int, error) {
	if err := service.ValidateID(id); err != nil {
		return -1, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return -1, &service.NotFoundError{ID: id}
	}
	return i, nil
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []service.Task {
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

var _ service.Service = (*Store)(nil)
