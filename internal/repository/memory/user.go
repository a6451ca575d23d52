package memory

import (
	"context"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// CreateUser assigns a fresh id and appends the user; the administration
// table keeps insertion order.
func (m *Memory) CreateUser(_ context.Context, u entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = m.newID()
	u.Permissions = copyStrings(u.Permissions)
	m.users = append(m.users, u)

	m.log.Infow("user created", "user_id", u.ID, "role", u.Role)
	out := cloneUser(u)
	return &out, nil
}

// UpdateUser applies only the named fields to the matching user.
func (m *Memory) UpdateUser(_ context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.userIndex(id)
	if idx < 0 {
		return nil, entities.ErrUserNotFound
	}

	u := &m.users[idx]
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Department != nil {
		u.Department = *upd.Department
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Permissions != nil {
		u.Permissions = copyStrings(*upd.Permissions)
	}

	out := cloneUser(*u)
	return &out, nil
}

// DeleteUser removes the matching user.
func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.userIndex(id)
	if idx < 0 {
		return entities.ErrUserNotFound
	}
	m.users = append(m.users[:idx], m.users[idx+1:]...)
	m.log.Infow("user deleted", "user_id", id)
	return nil
}

// ListUsers returns a snapshot of the collection in insertion order.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (m *Memory) userIndex(id string) int {
	for i, u := range m.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func cloneUser(u entities.User) entities.User {
	u.Permissions = copyStrings(u.Permissions)
	return u
}
