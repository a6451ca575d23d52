// Package views contains the pure view-filter engines. Each function maps a
// full collection snapshot plus local UI state (search term, categorical
// filters, sort key) to the ordered subsequence shown on screen. Filtering is
// stateless and idempotent; output is recomputed fully on every call.
package views

import (
	"sort"
	"strings"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// FilterAll is the sentinel disabling a categorical filter dimension.
const FilterAll = "all"

// Deal sort keys.
const (
	DealSortValue       = "value"
	DealSortProbability = "probability"
	DealSortCloseDate   = "closeDate"
	DealSortUpdated     = "updated"
)

// Task sort keys.
const (
	TaskSortDueDate  = "dueDate"
	TaskSortPriority = "priority"
	TaskSortStatus   = "status"
	TaskSortUpdated  = "updated"
)

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func filterActive(filter string) bool {
	return filter != "" && filter != FilterAll
}

// Contacts returns contacts whose name, company or email contains the search
// term, narrowed by lead-temperature status.
func Contacts(contacts []entities.Contact, q entities.ContactQuery) []entities.Contact {
	out := make([]entities.Contact, 0, len(contacts))
	for _, c := range contacts {
		if !matches(q.Search, c.Name, c.Company, c.Email) {
			continue
		}
		if filterActive(q.Status) && string(c.Status) != q.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Deals returns deals whose title, contact name or contact company contains
// the search term, narrowed by stage and ordered by the sort key. An unknown
// sort key keeps collection order.
func Deals(deals []entities.Deal, q entities.DealQuery) []entities.Deal {
	out := make([]entities.Deal, 0, len(deals))
	for _, d := range deals {
		if !matches(q.Search, d.Title, d.Contact.Name, d.Contact.Company) {
			continue
		}
		if filterActive(q.Stage) && d.Stage.ID != q.Stage {
			continue
		}
		out = append(out, d)
	}

	switch q.SortBy {
	case DealSortValue:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	case DealSortProbability:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Probability > out[j].Probability })
	case DealSortCloseDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CloseDate.Before(out[j].CloseDate) })
	case DealSortUpdated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	}
	return out
}

// Tasks returns tasks whose title, description or assignee contains the
// search term, narrowed by status and priority (AND semantics) and ordered by
// the sort key.
func Tasks(tasks []entities.Task, q entities.TaskQuery) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matches(q.Search, t.Title, t.Description, t.AssignedTo) {
			continue
		}
		if filterActive(q.Status) && string(t.Status) != q.Status {
			continue
		}
		if filterActive(q.Priority) && string(t.Priority) != q.Priority {
			continue
		}
		out = append(out, t)
	}

	switch q.SortBy {
	case TaskSortDueDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	case TaskSortPriority:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority.Rank() > out[j].Priority.Rank() })
	case TaskSortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status.Rank() < out[j].Status.Rank() })
	case TaskSortUpdated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	}
	return out
}
