// Package domain contains application Usecases orchestrating domain logic by deal.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/views"
)

// ListDeals returns the deal view for the given search/filter/sort state.
func (u *Usecase) ListDeals(ctx context.Context, q entities.DealQuery) ([]entities.Deal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	deals, err := u.repo.ListDeals(ctx)
	if err != nil {
		return nil, err
	}
	return views.Deals(deals, q), nil
}

// CreateDeal validates the form payload, resolves the stage and contact
// snapshot and stores the new deal.
func (u *Usecase) CreateDeal(ctx context.Context, draft entities.DealDraft) (*entities.Deal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	errs := validateDealDraft(draft)

	var contact *entities.Contact
	if _, ok := errs["contactId"]; !ok {
		var err error
		contact, err = u.repo.GetContact(ctx, draft.ContactID)
		if errors.Is(err, entities.ErrContactNotFound) {
			if errs == nil {
				errs = entities.FieldErrors{}
			}
			errs["contactId"] = "Please select a contact"
		} else if err != nil {
			return nil, err
		}
	}
	if errs != nil {
		u.log.Infow("deal rejected", "fields", len(errs))
		return nil, errs
	}

	stageID := draft.StageID
	if stageID == "" {
		stageID = entities.Stages()[0].ID
	}
	stage, ok := entities.StageByID(stageID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrStageNotFound, stageID)
	}

	if draft.Probability < 0 || draft.Probability > 100 {
		return nil, fmt.Errorf("%w: probability must be within 0-100", entities.ErrInvalidArgument)
	}

	res, err := u.repo.CreateDeal(ctx, entities.Deal{
		Title:       draft.Title,
		Value:       draft.Value,
		Stage:       stage,
		ContactID:   contact.ID,
		Contact:     *contact,
		Probability: draft.Probability,
		CloseDate:   draft.CloseDate,
		Description: draft.Description,
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("deal create", "deal_id", res.ID, "stage", stage.ID)
	return res, nil
}

// UpdateDeal applies a partial mutation to an existing deal. Changing the
// contact reference refreshes the denormalized snapshot; other contact edits
// never propagate into deals.
func (u *Usecase) UpdateDeal(ctx context.Context, id string, upd entities.DealUpdate) (*entities.Deal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: deal id is required", entities.ErrInvalidArgument)
	}
	if upd.Value != nil && *upd.Value < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", entities.ErrInvalidArgument)
	}
	if upd.Probability != nil && (*upd.Probability < 0 || *upd.Probability > 100) {
		return nil, fmt.Errorf("%w: probability must be within 0-100", entities.ErrInvalidArgument)
	}

	if upd.ContactID != nil {
		contact, err := u.repo.GetContact(ctx, *upd.ContactID)
		if err != nil {
			return nil, err
		}
		upd.Contact = contact
	}

	return u.repo.UpdateDeal(ctx, id, upd)
}

// DeleteDeal removes a deal by id.
func (u *Usecase) DeleteDeal(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: deal id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteDeal(ctx, id)
}
