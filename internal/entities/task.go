// Package entities contains core business entities.
package entities

import "time"

// TaskPriority enumerates task urgency levels.
type TaskPriority string

const (
	// PriorityLow is the lowest urgency.
	PriorityLow TaskPriority = "low"
	// PriorityMedium is the default urgency.
	PriorityMedium TaskPriority = "medium"
	// PriorityHigh marks important work.
	PriorityHigh TaskPriority = "high"
	// PriorityUrgent marks work that must happen now.
	PriorityUrgent TaskPriority = "urgent"
)

// Rank orders priorities urgent > high > medium > low.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether the priority is a known level.
func (p TaskPriority) Valid() bool {
	return p.Rank() != 0
}

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// TaskTodo is not yet started.
	TaskTodo TaskStatus = "todo"
	// TaskInProgress is underway.
	TaskInProgress TaskStatus = "in-progress"
	// TaskCompleted is finished.
	TaskCompleted TaskStatus = "completed"
)

// Rank orders statuses todo < in-progress < completed.
func (s TaskStatus) Rank() int {
	switch s {
	case TaskTodo:
		return 1
	case TaskInProgress:
		return 2
	case TaskCompleted:
		return 3
	}
	return 0
}

// Valid reports whether the status is a known state.
func (s TaskStatus) Valid() bool {
	return s.Rank() != 0
}

// Task is a unit of work, optionally linked to a contact and/or deal.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     time.Time
	AssignedTo  string
	ContactID   string
	DealID      string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdate carries a partial task mutation; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *TaskPriority
	Status      *TaskStatus
	DueDate     *time.Time
	AssignedTo  *string
	ContactID   *string
	DealID      *string
	Tags        *[]string
}

// TaskQuery narrows and orders a task listing.
type TaskQuery struct {
	Search   string
	Status   string
	Priority string
	SortBy   string
}
