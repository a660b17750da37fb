// ABOUTME: Kanban task CRUD operations
// ABOUTME: Tasks carry a weak grantId reference that is never validated on write
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Tasks returns a snapshot of the task collection.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TaskByID returns the task with the given id.
func (s *Store) TaskByID(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// AddTask assigns an id and timestamps if missing, then appends the task.
func (s *Store) AddTask(t *models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = models.NewID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = models.TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}

	s.tasks = append(s.tasks, *t)
	s.persist(charm.KeyTasks)
	s.record("task", t.ID, "created", t.Title)
}

// UpdateTask replaces the stored task with the same id.
func (s *Store) UpdateTask(t models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			t.CreatedAt = s.tasks[i].CreatedAt
			t.UpdatedAt = time.Now().UTC()
			s.tasks[i] = t
			s.persist(charm.KeyTasks)
			s.record("task", t.ID, "updated", t.Title)
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			title := s.tasks[i].Title
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(charm.KeyTasks)
			s.record("task", id, "deleted", title)
			return nil
		}
	}
	return fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// TasksByStatus groups tasks into kanban columns, preserving board order.
func (s *Store) TasksByStatus() map[string][]models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cols := make(map[string][]models.Task)
	for _, t := range s.tasks {
		cols[t.Status] = append(cols[t.Status], t)
	}
	return cols
}
