// Package domain contains application Usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdsramirez-cloud/crmpro1/internal/calendar"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/views"
)

// ListTasks returns the task view for the given search/filter/sort state.
func (u *Usecase) ListTasks(ctx context.Context, q entities.TaskQuery) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return views.Tasks(tasks, q), nil
}

// CreateTask stores a new task, defaulting priority and status.
func (u *Usecase) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if t.Title == "" {
		return nil, fmt.Errorf("%w: task title is required", entities.ErrInvalidArgument)
	}
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	if t.Status == "" {
		t.Status = entities.TaskTodo
	}
	if !t.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, t.Priority)
	}
	if !t.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, t.Status)
	}

	return u.repo.CreateTask(ctx, t)
}

// UpdateTask applies a partial mutation to an existing task.
func (u *Usecase) UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	if upd.Priority != nil && !upd.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, *upd.Priority)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
	}
	return u.repo.UpdateTask(ctx, id, upd)
}

// DeleteTask removes a task by id.
func (u *Usecase) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTask(ctx, id)
}

// TaskCalendarLink builds the calendar deep link for a task. The linked
// contact's company, when present, becomes the event location.
func (u *Usecase) TaskCalendarLink(ctx context.Context, id string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return "", fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return "", err
	}

	location := ""
	if task.ContactID != "" {
		contact, err := u.repo.GetContact(ctx, task.ContactID)
		if err != nil && !errors.Is(err, entities.ErrContactNotFound) {
			return "", err
		}
		if contact != nil {
			location = contact.Company
		}
	}

	return calendar.Link(calendar.Event{
		Title:       task.Title,
		Description: task.Description,
		Location:    location,
		Start:       task.DueDate,
	}), nil
}
