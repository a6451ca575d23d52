// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ContactInterface exposes contact-related operations.
type ContactInterface interface {
	CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error)
	UpdateContact(ctx context.Context, id string, upd entities.ContactUpdate) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	GetContact(ctx context.Context, id string) (*entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
}

// DealInterface exposes deal-related operations.
type DealInterface interface {
	CreateDeal(ctx context.Context, d entities.Deal) (*entities.Deal, error)
	UpdateDeal(ctx context.Context, id string, upd entities.DealUpdate) (*entities.Deal, error)
	DeleteDeal(ctx context.Context, id string) error
	GetDeal(ctx context.Context, id string) (*entities.Deal, error)
	ListDeals(ctx context.Context) ([]entities.Deal, error)
}

// TaskInterface exposes task-related operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
}

// UserInterface exposes team-member administration operations.
type UserInterface interface {
	CreateUser(ctx context.Context, u entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]entities.User, error)
}
