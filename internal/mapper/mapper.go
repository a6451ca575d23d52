// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/preferences"
	"github.com/abdsramirez-cloud/crmpro1/internal/usecase/domain"
)

// FromAPIContact builds an entities.Contact from the creation payload.
func FromAPIContact(src api.CreateContactRequest) entities.Contact {
	c := entities.Contact{
		Name:     src.Name,
		Email:    src.Email,
		Phone:    src.Phone,
		Company:  src.Company,
		Position: src.Position,
		Status:   entities.ContactStatus(src.Status),
		Avatar:   src.Avatar,
		Tags:     src.Tags,
	}
	if src.LastContact != nil {
		c.LastContact = *src.LastContact
	}
	return c
}

// FromAPIContactUpdate builds an entities.ContactUpdate from the patch payload.
func FromAPIContactUpdate(src api.UpdateContactRequest) entities.ContactUpdate {
	upd := entities.ContactUpdate{
		Name:        src.Name,
		Email:       src.Email,
		Phone:       src.Phone,
		Company:     src.Company,
		Position:    src.Position,
		LastContact: src.LastContact,
		Avatar:      src.Avatar,
		Tags:        src.Tags,
	}
	if src.Status != nil {
		status := entities.ContactStatus(*src.Status)
		upd.Status = &status
	}
	return upd
}

// ToAPIContact maps entities.Contact to transport model.
func ToAPIContact(c entities.Contact) api.Contact {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.Contact{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		Position:    c.Position,
		Status:      string(c.Status),
		LastContact: c.LastContact,
		Avatar:      c.Avatar,
		Tags:        tags,
	}
}

// ToAPIContactList maps a slice of entities.Contact to transport slice.
func ToAPIContactList(list []entities.Contact) []api.Contact {
	res := make([]api.Contact, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPIContact(c))
	}
	return res
}

// ToAPIStage maps entities.Stage to transport model.
func ToAPIStage(s entities.Stage) api.Stage {
	return api.Stage{
		ID:    s.ID,
		Name:  s.Name,
		Color: s.Color,
		Order: s.Order,
	}
}

// FromAPIDealDraft builds an entities.DealDraft from the creation payload.
func FromAPIDealDraft(src api.CreateDealRequest) entities.DealDraft {
	draft := entities.DealDraft{
		Title:       src.Title,
		Value:       src.Value,
		StageID:     src.StageID,
		ContactID:   src.ContactID,
		Probability: src.Probability,
		Description: src.Description,
	}
	if src.CloseDate != nil {
		draft.CloseDate = *src.CloseDate
	}
	return draft
}

// FromAPIDealUpdate builds an entities.DealUpdate from the patch payload.
// The contact snapshot for a changed ContactID is resolved by the usecase.
func FromAPIDealUpdate(src api.UpdateDealRequest) entities.DealUpdate {
	return entities.DealUpdate{
		Title:       src.Title,
		Value:       src.Value,
		StageID:     src.StageID,
		ContactID:   src.ContactID,
		Probability: src.Probability,
		CloseDate:   src.CloseDate,
		Description: src.Description,
	}
}

// ToAPIDeal maps entities.Deal to transport model.
func ToAPIDeal(d entities.Deal) api.Deal {
	activities := make([]api.Activity, 0, len(d.Activities))
	for _, a := range d.Activities {
		activities = append(activities, api.Activity{
			ID:          a.ID,
			Type:        string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Date:        a.Date,
			Completed:   a.Completed,
		})
	}

	return api.Deal{
		ID:          d.ID,
		Title:       d.Title,
		Value:       d.Value,
		Stage:       ToAPIStage(d.Stage),
		ContactID:   d.ContactID,
		Contact:     ToAPIContact(d.Contact),
		Probability: d.Probability,
		CloseDate:   d.CloseDate,
		Description: d.Description,
		Activities:  activities,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToAPIDealList maps a slice of entities.Deal to transport slice.
func ToAPIDealList(list []entities.Deal) []api.Deal {
	res := make([]api.Deal, 0, len(list))
	for _, d := range list {
		res = append(res, ToAPIDeal(d))
	}
	return res
}

// FromAPIMove builds an entities.Move from the drag-end payload.
func FromAPIMove(src api.MoveDealRequest) entities.Move {
	return entities.Move{
		DealID:      src.DealID,
		SourceStage: src.SourceStage,
		DestStage:   src.DestStage,
		SourceIndex: src.SourceIndex,
		DestIndex:   src.DestIndex,
	}
}

// ToAPIBoard maps the kanban columns to transport slice.
func ToAPIBoard(cols []entities.BoardColumn) []api.BoardColumn {
	res := make([]api.BoardColumn, 0, len(cols))
	for _, col := range cols {
		res = append(res, api.BoardColumn{
			Stage:     ToAPIStage(col.Stage),
			Deals:     ToAPIDealList(col.Deals),
			DealCount: col.DealCount,
			Value:     col.Value,
		})
	}
	return res
}

// ToAPIDashboard maps the dashboard aggregate to transport model.
func ToAPIDashboard(s entities.DashboardStats) api.DashboardStats {
	byStage := make([]api.StageStat, 0, len(s.ByStage))
	for _, st := range s.ByStage {
		byStage = append(byStage, api.StageStat{
			Stage:     ToAPIStage(st.Stage),
			DealCount: st.DealCount,
			Value:     st.Value,
		})
	}

	return api.DashboardStats{
		TotalValue:     s.TotalValue,
		ActiveDeals:    s.ActiveDeals,
		TotalContacts:  s.TotalContacts,
		WonDeals:       s.WonDeals,
		ConversionRate: s.ConversionRate,
		ByStage:        byStage,
		RecentDeals:    ToAPIDealList(s.RecentDeals),
		HotContacts:    s.HotContacts,
	}
}

// FromAPITask builds an entities.Task from the creation payload.
func FromAPITask(src api.CreateTaskRequest) entities.Task {
	t := entities.Task{
		Title:       src.Title,
		Description: src.Description,
		Priority:    entities.TaskPriority(src.Priority),
		Status:      entities.TaskStatus(src.Status),
		AssignedTo:  src.AssignedTo,
		ContactID:   src.ContactID,
		DealID:      src.DealID,
		Tags:        src.Tags,
	}
	if src.DueDate != nil {
		t.DueDate = *src.DueDate
	}
	return t
}

// FromAPITaskUpdate builds an entities.TaskUpdate from the patch payload.
func FromAPITaskUpdate(src api.UpdateTaskRequest) entities.TaskUpdate {
	upd := entities.TaskUpdate{
		Title:       src.Title,
		Description: src.Description,
		DueDate:     src.DueDate,
		AssignedTo:  src.AssignedTo,
		ContactID:   src.ContactID,
		DealID:      src.DealID,
		Tags:        src.Tags,
	}
	if src.Priority != nil {
		p := entities.TaskPriority(*src.Priority)
		upd.Priority = &p
	}
	if src.Status != nil {
		s := entities.TaskStatus(*src.Status)
		upd.Status = &s
	}
	return upd
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		ContactID:   t.ContactID,
		DealID:      t.DealID,
		Tags:        tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAPITaskList maps a slice of entities.Task to transport slice.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// FromAPIUser builds an entities.User from the creation payload.
func FromAPIUser(src api.CreateUserRequest) entities.User {
	u := entities.User{
		Name:        src.Name,
		Email:       src.Email,
		Role:        entities.UserRole(src.Role),
		Department:  src.Department,
		Phone:       src.Phone,
		Status:      entities.UserStatus(src.Status),
		Permissions: src.Permissions,
	}
	if src.JoinDate != nil {
		u.JoinDate = *src.JoinDate
	}
	return u
}

// FromAPIUserUpdate builds an entities.UserUpdate from the patch payload.
func FromAPIUserUpdate(src api.UpdateUserRequest) entities.UserUpdate {
	upd := entities.UserUpdate{
		Name:        src.Name,
		Email:       src.Email,
		Department:  src.Department,
		Phone:       src.Phone,
		Permissions: src.Permissions,
	}
	if src.Role != nil {
		role := entities.UserRole(*src.Role)
		upd.Role = &role
	}
	if src.Status != nil {
		status := entities.UserStatus(*src.Status)
		upd.Status = &status
	}
	return upd
}

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return api.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Department:  u.Department,
		Phone:       u.Phone,
		JoinDate:    u.JoinDate,
		Status:      string(u.Status),
		Permissions: perms,
	}
}

// ToAPIUserList maps a slice of entities.User to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIProfile maps entities.UserProfile to transport model.
func ToAPIProfile(p entities.UserProfile) api.Profile {
	return api.Profile{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Department: p.Department,
		Position:   p.Position,
		Avatar:     p.Avatar,
		Timezone:   p.Timezone,
		Notifications: api.NotificationPrefs{
			Email: p.Notifications.Email,
			Push:  p.Notifications.Push,
			Deals: p.Notifications.Deals,
			Tasks: p.Notifications.Tasks,
		},
	}
}

// FromAPIProfileUpdate builds an entities.ProfileUpdate from the patch payload.
func FromAPIProfileUpdate(src api.UpdateProfileRequest) entities.ProfileUpdate {
	upd := entities.ProfileUpdate{
		Name:       src.Name,
		Email:      src.Email,
		Phone:      src.Phone,
		Department: src.Department,
		Position:   src.Position,
		Avatar:     src.Avatar,
		Timezone:   src.Timezone,
	}
	if src.Notifications != nil {
		upd.Notifications = &entities.NotificationPrefs{
			Email: src.Notifications.Email,
			Push:  src.Notifications.Push,
			Deals: src.Notifications.Deals,
			Tasks: src.Notifications.Tasks,
		}
	}
	return upd
}

// ToAPIPalette maps preferences.Palette to transport model.
func ToAPIPalette(p preferences.Palette) api.Palette {
	return api.Palette{
		Primary:    p.Primary,
		Secondary:  p.Secondary,
		Success:    p.Success,
		Warning:    p.Warning,
		Error:      p.Error,
		Background: p.Background,
		Surface:    p.Surface,
		Text:       p.Text,
	}
}

// ToAPISettings maps the settings snapshot to transport model.
func ToAPISettings(s domain.Settings) api.Settings {
	return api.Settings{
		Language: string(s.Language),
		Theme:    string(s.Theme),
		Profile:  ToAPIProfile(s.Profile),
		Palette:  ToAPIPalette(s.Palette),
	}
}
