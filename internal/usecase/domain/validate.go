package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// emailPattern mirrors the contact form's acceptance set.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateContact checks the contact-creation form contract. Violations are
// collected per field; the store is never touched while any remain.
func validateContact(c entities.Contact) entities.FieldErrors {
	errs := entities.FieldErrors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "Contact name is required"
	}

	switch {
	case strings.TrimSpace(c.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(c.Email):
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(c.Company) == "" {
		errs["company"] = "Company is required"
	}
	if strings.TrimSpace(c.Position) == "" {
		errs["position"] = "Position is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateDealDraft checks the deal-creation form contract.
func validateDealDraft(d entities.DealDraft) entities.FieldErrors {
	errs := entities.FieldErrors{}

	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "Deal title is required"
	}
	if d.Value <= 0 {
		errs["value"] = "Deal value must be greater than 0"
	}
	if strings.TrimSpace(d.ContactID) == "" {
		errs["contactId"] = "Please select a contact"
	}
	if d.CloseDate.Equal(time.Time{}) {
		errs["closeDate"] = "Close date is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "Description is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
