// Package api defines the transport DTOs and error codes of the HTTP
// surface. Field names follow the front-end's camelCase contract.
package api

import "time"

// ErrorResponseErrorCode is a machine-readable error code.
type ErrorResponseErrorCode string

// Error codes.
const (
	INVALIDARGUMENT  ErrorResponseErrorCode = "INVALID_ARGUMENT"
	VALIDATIONFAILED ErrorResponseErrorCode = "VALIDATION_FAILED"
	NOTFOUND         ErrorResponseErrorCode = "NOT_FOUND"
	INTERNAL         ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code, message and optional per-field details.
type ErrorBody struct {
	Code    ErrorResponseErrorCode `json:"code"`
	Message string                 `json:"message"`
	Fields  map[string]string      `json:"fields,omitempty"`
}

// Contact is the transport model of a CRM contact.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	LastContact time.Time `json:"lastContact"`
	Avatar      string    `json:"avatar,omitempty"`
	Tags        []string  `json:"tags"`
}

// CreateContactRequest is the contact-creation form payload.
type CreateContactRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Status      string     `json:"status"`
	LastContact *time.Time `json:"lastContact,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// UpdateContactRequest is a partial contact mutation; absent fields are left
// untouched.
type UpdateContactRequest struct {
	Name        *string    `json:"name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Company     *string    `json:"company,omitempty"`
	Position    *string    `json:"position,omitempty"`
	Status      *string    `json:"status,omitempty"`
	LastContact *time.Time `json:"lastContact,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}

// Stage is the transport model of a pipeline stage.
type Stage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// Activity is a logged interaction on a deal.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Completed   bool      `json:"completed"`
}

// Deal is the transport model of a sales opportunity.
type Deal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Value       float64    `json:"value"`
	Stage       Stage      `json:"stage"`
	ContactID   string     `json:"contactId"`
	Contact     Contact    `json:"contact"`
	Probability int        `json:"probability"`
	CloseDate   time.Time  `json:"closeDate"`
	Description string     `json:"description"`
	Activities  []Activity `json:"activities"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateDealRequest is the deal-creation form payload.
type CreateDealRequest struct {
	Title       string     `json:"title"`
	Value       float64    `json:"value"`
	StageID     string     `json:"stageId"`
	ContactID   string     `json:"contactId"`
	Probability int        `json:"probability"`
	CloseDate   *time.Time `json:"closeDate,omitempty"`
	Description string     `json:"description"`
}

// UpdateDealRequest is a partial deal mutation.
type UpdateDealRequest struct {
	Title       *string    `json:"title,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	StageID     *string    `json:"stageId,omitempty"`
	ContactID   *string    `json:"contactId,omitempty"`
	Probability *int       `json:"probability,omitempty"`
	CloseDate   *time.Time `json:"closeDate,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// BoardColumn is one kanban column with its derived aggregates.
type BoardColumn struct {
	Stage     Stage   `json:"stage"`
	Deals     []Deal  `json:"deals"`
	DealCount int     `json:"dealCount"`
	Value     float64 `json:"value"`
}

// MoveDealRequest is the drag-end payload.
type MoveDealRequest struct {
	DealID      string `json:"dealId"`
	SourceStage string `json:"sourceStageId"`
	DestStage   string `json:"destinationStageId"`
	SourceIndex int    `json:"sourceIndex"`
	DestIndex   int    `json:"destinationIndex"`
}

// MoveDealResponse reports whether the drag changed anything.
type MoveDealResponse struct {
	Moved bool  `json:"moved"`
	Deal  *Deal `json:"deal,omitempty"`
}

// StageStat is the per-stage dashboard breakdown.
type StageStat struct {
	Stage     Stage   `json:"stage"`
	DealCount int     `json:"dealCount"`
	Value     float64 `json:"value"`
}

// DashboardStats is the dashboard aggregate payload.
type DashboardStats struct {
	TotalValue     float64     `json:"totalValue"`
	ActiveDeals    int         `json:"activeDeals"`
	TotalContacts  int         `json:"totalContacts"`
	WonDeals       int         `json:"wonDeals"`
	ConversionRate float64     `json:"conversionRate"`
	ByStage        []StageStat `json:"byStage"`
	RecentDeals    []Deal      `json:"recentDeals"`
	HotContacts    int         `json:"hotContacts"`
}

// Task is the transport model of a task.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	AssignedTo  string    `json:"assignedTo"`
	ContactID   string    `json:"contactId,omitempty"`
	DealID      string    `json:"dealId,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskRequest is the task-creation payload.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  string     `json:"assignedTo"`
	ContactID   string     `json:"contactId,omitempty"`
	DealID      string     `json:"dealId,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// UpdateTaskRequest is a partial task mutation.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	ContactID   *string    `json:"contactId,omitempty"`
	DealID      *string    `json:"dealId,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}

// CalendarLinkResponse carries the calendar deep link for a task.
type CalendarLinkResponse struct {
	URL string `json:"url"`
}

// User is the transport model of a team member.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Phone       string    `json:"phone"`
	JoinDate    time.Time `json:"joinDate"`
	Status      string    `json:"status"`
	Permissions []string  `json:"permissions"`
}

// CreateUserRequest is the user-creation payload.
type CreateUserRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Department  string     `json:"department"`
	Phone       string     `json:"phone"`
	JoinDate    *time.Time `json:"joinDate,omitempty"`
	Status      string     `json:"status"`
	Permissions []string   `json:"permissions,omitempty"`
}

// UpdateUserRequest is a partial user mutation.
type UpdateUserRequest struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

// NotificationPrefs holds the profile's notification toggles.
type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	Deals bool `json:"deals"`
	Tasks bool `json:"tasks"`
}

// Profile is the current-user profile payload.
type Profile struct {
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

// UpdateProfileRequest is a partial profile mutation.
type UpdateProfileRequest struct {
	Name          *string            `json:"name,omitempty"`
	Email         *string            `json:"email,omitempty"`
	Phone         *string            `json:"phone,omitempty"`
	Department    *string            `json:"department,omitempty"`
	Position      *string            `json:"position,omitempty"`
	Avatar        *string            `json:"avatar,omitempty"`
	Timezone      *string            `json:"timezone,omitempty"`
	Notifications *NotificationPrefs `json:"notifications,omitempty"`
}

// Palette is a theme's named color set.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

// Settings is the settings-surface snapshot.
type Settings struct {
	Language string  `json:"language"`
	Theme    string  `json:"theme"`
	Profile  Profile `json:"profile"`
	Palette  Palette `json:"palette"`
}

// SetLanguageRequest selects the interface language.
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// SetThemeRequest selects the presentation theme.
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// SetThemeResponse returns the palette the client applies.
type SetThemeResponse struct {
	Theme   string  `json:"theme"`
	Palette Palette `json:"palette"`
}
