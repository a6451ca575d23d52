package usecase

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/preferences"
	"github.com/abdsramirez-cloud/crmpro1/internal/usecase/domain"
)

// ContactUsecaseInterface abstracts contact operations for the delivery layer.
type ContactUsecaseInterface interface {
	ListContacts(ctx context.Context, q entities.ContactQuery) ([]entities.Contact, error)
	CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error)
	UpdateContact(ctx context.Context, id string, upd entities.ContactUpdate) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// DealUsecaseInterface abstracts deal operations.
type DealUsecaseInterface interface {
	ListDeals(ctx context.Context, q entities.DealQuery) ([]entities.Deal, error)
	CreateDeal(ctx context.Context, draft entities.DealDraft) (*entities.Deal, error)
	UpdateDeal(ctx context.Context, id string, upd entities.DealUpdate) (*entities.Deal, error)
	DeleteDeal(ctx context.Context, id string) error
}

// PipelineUsecaseInterface abstracts the kanban board operations.
type PipelineUsecaseInterface interface {
	Board(ctx context.Context) ([]entities.BoardColumn, error)
	MoveDeal(ctx context.Context, mv entities.Move) (*entities.Deal, bool, error)
}

// DashboardUsecaseInterface abstracts the dashboard aggregation.
type DashboardUsecaseInterface interface {
	Dashboard(ctx context.Context) (entities.DashboardStats, error)
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, q entities.TaskQuery) ([]entities.Task, error)
	CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	TaskCalendarLink(ctx context.Context, id string) (string, error)
}

// UserUsecaseInterface abstracts user-administration operations.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	AddUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// SettingsUsecaseInterface abstracts the settings surface.
type SettingsUsecaseInterface interface {
	CurrentSettings(ctx context.Context) (domain.Settings, error)
	SetLanguage(ctx context.Context, lang string) error
	SetTheme(ctx context.Context, theme string) (preferences.Palette, error)
	UpdateProfile(ctx context.Context, upd entities.ProfileUpdate) (entities.UserProfile, error)
	Translations(ctx context.Context) (map[string]string, error)
}
