// Package entities contains core business entities.
package entities

import "time"

// ActivityType enumerates activity kinds attached to a deal.
type ActivityType string

const (
	// ActivityCall is a phone call record.
	ActivityCall ActivityType = "call"
	// ActivityEmail is an email record.
	ActivityEmail ActivityType = "email"
	// ActivityMeeting is a meeting record.
	ActivityMeeting ActivityType = "meeting"
	// ActivityNote is a free-form note.
	ActivityNote ActivityType = "note"
)

// Activity is a logged interaction on a deal. Stored with the deal, not
// otherwise processed.
type Activity struct {
	ID          string
	Type        ActivityType
	Title       string
	Description string
	Date        time.Time
	Completed   bool
}

// Deal is a tracked sales opportunity associated with one contact and one
// pipeline stage. Contact is a denormalized snapshot taken when the deal is
// created or its contact reference changes; later contact edits do not
// propagate here.
type Deal struct {
	ID          string
	Title       string
	Value       float64
	Stage       Stage
	ContactID   string
	Contact     Contact
	Probability int
	CloseDate   time.Time
	Description string
	Activities  []Activity
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DealUpdate carries a partial deal mutation; nil fields are left untouched.
// Setting ContactID requires the caller to supply the matching Contact
// snapshot. UpdatedAt is refreshed by the store on every update regardless of
// which fields are set.
type DealUpdate struct {
	Title       *string
	Value       *float64
	StageID     *string
	ContactID   *string
	Contact     *Contact
	Probability *int
	CloseDate   *time.Time
	Description *string
}

// DealDraft is the deal-creation form payload. The stage is referenced by id
// (empty means the first pipeline stage) and the contact by id; the service
// resolves both and takes the contact snapshot.
type DealDraft struct {
	Title       string
	Value       float64
	StageID     string
	ContactID   string
	Probability int
	CloseDate   time.Time
	Description string
}

// DealQuery narrows and orders a deal listing.
type DealQuery struct {
	Search string
	Stage  string
	SortBy string
}
