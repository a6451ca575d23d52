// Package entities contains core business entities.
package entities

import "time"

// UserRole enumerates team-member roles.
type UserRole string

const (
	// RoleAdmin has full access.
	RoleAdmin UserRole = "admin"
	// RoleManager manages deals and people.
	RoleManager UserRole = "manager"
	// RoleSales works deals and contacts.
	RoleSales UserRole = "sales"
	// RoleUser is the base role.
	RoleUser UserRole = "user"
)

// Valid reports whether the role is known.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSales, RoleUser:
		return true
	}
	return false
}

// UserStatus enumerates account states.
type UserStatus string

const (
	// UserActive marks an enabled account.
	UserActive UserStatus = "active"
	// UserInactive marks a disabled account.
	UserInactive UserStatus = "inactive"
)

// Valid reports whether the status is known.
func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserInactive
}

// User is an internal team member shown in the user-administration table.
// Distinct from Contact, which is an external CRM record.
type User struct {
	ID          string
	Name        string
	Email       string
	Role        UserRole
	Department  string
	Phone       string
	JoinDate    time.Time
	Status      UserStatus
	Permissions []string
}

// UserUpdate carries a partial user mutation; nil fields are left untouched.
type UserUpdate struct {
	Name        *string
	Email       *string
	Role        *UserRole
	Department  *string
	Phone       *string
	Status      *UserStatus
	Permissions *[]string
}

// NotificationPrefs holds the current user's notification toggles.
type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	Deals bool `json:"deals"`
	Tasks bool `json:"tasks"`
}

// UserProfile is the current user's editable profile. Serialized as JSON into
// the preferences store, so it carries tags.
type UserProfile struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Department    string            `json:"department"`
	Position      string            `json:"position"`
	Avatar        string            `json:"avatar,omitempty"`
	Timezone      string            `json:"timezone"`
	Notifications NotificationPrefs `json:"notifications"`
}

// ProfileUpdate carries a partial profile mutation; nil fields are left untouched.
type ProfileUpdate struct {
	Name          *string
	Email         *string
	Phone         *string
	Department    *string
	Position      *string
	Avatar        *string
	Timezone      *string
	Notifications *NotificationPrefs
}
