// Package domain contains application Usecases orchestrating domain logic by contact.
package domain

import (
	"context"
	"fmt"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/views"
)

// ListContacts returns the contact view for the given search/filter state.
func (u *Usecase) ListContacts(ctx context.Context, q entities.ContactQuery) ([]entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	contacts, err := u.repo.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	return views.Contacts(contacts, q), nil
}

// CreateContact validates the form payload and stores the new contact.
func (u *Usecase) CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if errs := validateContact(c); errs != nil {
		u.log.Infow("contact rejected", "fields", len(errs))
		return nil, errs
	}
	if c.Status == "" {
		c.Status = entities.StatusWarm
	}
	if !c.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, c.Status)
	}

	res, err := u.repo.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}
	u.log.Infow("contact create", "contact_id", res.ID)
	return res, nil
}

// UpdateContact applies a partial mutation to an existing contact.
func (u *Usecase) UpdateContact(ctx context.Context, id string, upd entities.ContactUpdate) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
	}
	return u.repo.UpdateContact(ctx, id, upd)
}

// DeleteContact removes a contact by id.
func (u *Usecase) DeleteContact(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteContact(ctx, id)
}
