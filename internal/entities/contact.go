// Package entities contains core business entities.
package entities

import "time"

// ContactStatus is the lead-temperature classification of a contact.
type ContactStatus string

const (
	// StatusHot marks a highly engaged contact.
	StatusHot ContactStatus = "hot"
	// StatusWarm marks a moderately engaged contact.
	StatusWarm ContactStatus = "warm"
	// StatusCold marks a disengaged contact.
	StatusCold ContactStatus = "cold"
)

// Valid reports whether the status is one of the known lead temperatures.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusHot, StatusWarm, StatusCold:
		return true
	}
	return false
}

// Contact is a domain representation of a CRM contact.
type Contact struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Company     string
	Position    string
	Status      ContactStatus
	LastContact time.Time
	Avatar      string
	Tags        []string
}

// ContactUpdate carries a partial contact mutation; nil fields are left untouched.
type ContactUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	Company     *string
	Position    *string
	Status      *ContactStatus
	LastContact *time.Time
	Avatar      *string
	Tags        *[]string
}

// ContactQuery narrows a contact listing.
type ContactQuery struct {
	Search string
	Status string
}
