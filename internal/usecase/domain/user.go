// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// ListUsers returns the user-administration table.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListUsers(ctx)
}

// AddUser stores a new team member.
func (u *Usecase) AddUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Name == "" || user.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", entities.ErrInvalidArgument)
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	if user.Status == "" {
		user.Status = entities.UserActive
	}
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now()
	}
	if user.Permissions == nil {
		if user.Role == entities.RoleAdmin {
			user.Permissions = []string{"all"}
		} else {
			user.Permissions = []string{"deals", "contacts"}
		}
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, user.Role)
	}
	if !user.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, user.Status)
	}

	return u.repo.CreateUser(ctx, user)
}

// UpdateUser applies a partial mutation to an existing team member.
func (u *Usecase) UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, *upd.Role)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
	}
	return u.repo.UpdateUser(ctx, id, upd)
}

// DeleteUser removes a team member by id.
func (u *Usecase) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteUser(ctx, id)
}
