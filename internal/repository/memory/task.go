package memory

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// CreateTask assigns a fresh id and timestamps and prepends the task.
func (m *Memory) CreateTask(_ context.Context, t entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	t.ID = m.newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Tags = copyStrings(t.Tags)
	m.tasks = append([]entities.Task{t}, m.tasks...)

	m.log.Infow("task created", "task_id", t.ID)
	out := cloneTask(t)
	return &out, nil
}

// UpdateTask applies only the named fields to the matching task and refreshes
// UpdatedAt.
func (m *Memory) UpdateTask(_ context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.taskIndex(id)
	if idx < 0 {
		return nil, entities.ErrTaskNotFound
	}

	t := &m.tasks[idx]
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.AssignedTo != nil {
		t.AssignedTo = *upd.AssignedTo
	}
	if upd.ContactID != nil {
		t.ContactID = *upd.ContactID
	}
	if upd.DealID != nil {
		t.DealID = *upd.DealID
	}
	if upd.Tags != nil {
		t.Tags = copyStrings(*upd.Tags)
	}
	t.UpdatedAt = m.now()

	out := cloneTask(*t)
	return &out, nil
}

// DeleteTask removes the matching task.
func (m *Memory) DeleteTask(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.taskIndex(id)
	if idx < 0 {
		return entities.ErrTaskNotFound
	}
	m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	m.log.Infow("task deleted", "task_id", id)
	return nil
}

// GetTask returns the task by id.
func (m *Memory) GetTask(_ context.Context, id string) (*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.taskIndex(id)
	if idx < 0 {
		return nil, entities.ErrTaskNotFound
	}
	out := cloneTask(m.tasks[idx])
	return &out, nil
}

// ListTasks returns a snapshot of the collection in canonical order.
func (m *Memory) ListTasks(_ context.Context) ([]entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (m *Memory) taskIndex(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTask(t entities.Task) entities.Task {
	t.Tags = copyStrings(t.Tags)
	return t
}
