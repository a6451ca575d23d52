package memory

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// CreateContact assigns a fresh id and prepends the contact so the newest
// record lists first.
func (m *Memory) CreateContact(_ context.Context, c entities.Contact) (*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.newID()
	c.Tags = copyStrings(c.Tags)
	m.contacts = append([]entities.Contact{c}, m.contacts...)

	m.log.Infow("contact created", "contact_id", c.ID)
	out := cloneContact(c)
	return &out, nil
}

// UpdateContact applies only the named fields to the matching contact.
func (m *Memory) UpdateContact(_ context.Context, id string, upd entities.ContactUpdate) (*entities.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.contactIndex(id)
	if idx < 0 {
		return nil, entities.ErrContactNotFound
	}

	c := &m.contacts[idx]
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Company != nil {
		c.Company = *upd.Company
	}
	if upd.Position != nil {
		c.Position = *upd.Position
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.LastContact != nil {
		c.LastContact = *upd.LastContact
	}
	if upd.Avatar != nil {
		c.Avatar = *upd.Avatar
	}
	if upd.Tags != nil {
		c.Tags = copyStrings(*upd.Tags)
	}

	out := cloneContact(*c)
	return &out, nil
}

// DeleteContact removes the matching contact.
func (m *Memory) DeleteContact(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.contactIndex(id)
	if idx < 0 {
		return entities.ErrContactNotFound
	}
	m.contacts = append(m.contacts[:idx], m.contacts[idx+1:]...)
	m.log.Infow("contact deleted", "contact_id", id)
	return nil
}

// GetContact returns the contact by id.
func (m *Memory) GetContact(_ context.Context, id string) (*entities.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.contactIndex(id)
	if idx < 0 {
		return nil, entities.ErrContactNotFound
	}
	out := cloneContact(m.contacts[idx])
	return &out, nil
}

// ListContacts returns a snapshot of the collection in canonical order.
func (m *Memory) ListContacts(_ context.Context) ([]entities.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, cloneContact(c))
	}
	return out, nil
}

func (m *Memory) contactIndex(id string) int {
	for i, c := range m.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func cloneContact(c entities.Contact) entities.Contact {
	c.Tags = copyStrings(c.Tags)
	return c
}
