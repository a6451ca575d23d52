package memory

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// CreateDeal assigns a fresh id and timestamps, initializes the activity log
// and prepends the deal so the newest record lists first.
func (m *Memory) CreateDeal(_ context.Context, d entities.Deal) (*entities.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	d.ID = m.newID()
	d.Activities = []entities.Activity{}
	d.CreatedAt = now
	d.UpdatedAt = now
	d.Contact = cloneContact(d.Contact)
	m.deals = append([]entities.Deal{d}, m.deals...)

	m.log.Infow("deal created", "deal_id", d.ID, "stage", d.Stage.ID)
	out := cloneDeal(d)
	return &out, nil
}

// UpdateDeal applies only the named fields to the matching deal. UpdatedAt is
// refreshed on every call regardless of which fields changed. Changes are
// staged on a copy and swapped in only when every field resolves, so a failed
// call leaves the stored deal untouched.
func (m *Memory) UpdateDeal(_ context.Context, id string, upd entities.DealUpdate) (*entities.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.dealIndex(id)
	if idx < 0 {
		return nil, entities.ErrDealNotFound
	}

	d := m.deals[idx]
	if upd.StageID != nil {
		stage, ok := entities.StageByID(*upd.StageID)
		if !ok {
			return nil, entities.ErrStageNotFound
		}
		d.Stage = stage
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Value != nil {
		d.Value = *upd.Value
	}
	if upd.ContactID != nil {
		d.ContactID = *upd.ContactID
		if upd.Contact != nil {
			d.Contact = cloneContact(*upd.Contact)
		}
	}
	if upd.Probability != nil {
		d.Probability = *upd.Probability
	}
	if upd.CloseDate != nil {
		d.CloseDate = *upd.CloseDate
	}
	if upd.Description != nil {
		d.Description = *upd.Description
	}
	d.UpdatedAt = m.now()
	m.deals[idx] = d

	out := cloneDeal(d)
	return &out, nil
}

// DeleteDeal removes the matching deal.
func (m *Memory) DeleteDeal(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.dealIndex(id)
	if idx < 0 {
		return entities.ErrDealNotFound
	}
	m.deals = append(m.deals[:idx], m.deals[idx+1:]...)
	m.log.Infow("deal deleted", "deal_id", id)
	return nil
}

// GetDeal returns the deal by id.
func (m *Memory) GetDeal(_ context.Context, id string) (*entities.Deal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.dealIndex(id)
	if idx < 0 {
		return nil, entities.ErrDealNotFound
	}
	out := cloneDeal(m.deals[idx])
	return &out, nil
}

// ListDeals returns a snapshot of the collection in canonical order.
func (m *Memory) ListDeals(_ context.Context) ([]entities.Deal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Deal, 0, len(m.deals))
	for _, d := range m.deals {
		out = append(out, cloneDeal(d))
	}
	return out, nil
}

func (m *Memory) dealIndex(id string) int {
	for i, d := range m.deals {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func cloneDeal(d entities.Deal) entities.Deal {
	d.Contact = cloneContact(d.Contact)
	if d.Activities != nil {
		acts := make([]entities.Activity, len(d.Activities))
		copy(acts, d.Activities)
		d.Activities = acts
	}
	return d
}
