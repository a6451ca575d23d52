package memory

import (
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

// Seed records mirror the demo dataset the UI ships with. Ids are short and
// stable so the front-end fixtures can reference them; entities created at
// runtime get ULIDs instead.

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func stage(id string) entities.Stage {
	s, ok := entities.StageByID(id)
	if !ok {
		panic("unknown seed stage: " + id)
	}
	return s
}

func seedContacts() []entities.Contact {
	return []entities.Contact{
		{
			ID:          "1",
			Name:        "Sarah Johnson",
			Email:       "sarah.johnson@techcorp.com",
			Phone:       "+1 (555) 123-4567",
			Company:     "TechCorp Solutions",
			Position:    "CTO",
			Status:      entities.StatusHot,
			LastContact: date("2024-01-15"),
			Tags:        []string{"enterprise", "decision-maker"},
		},
		{
			ID:          "2",
			Name:        "Michael Chen",
			Email:       "m.chen@innovatelabs.io",
			Phone:       "+1 (555) 234-5678",
			Company:     "Innovate Labs",
			Position:    "VP Engineering",
			Status:      entities.StatusWarm,
			LastContact: date("2024-01-10"),
			Tags:        []string{"startup", "technical"},
		},
		{
			ID:          "3",
			Name:        "Emily Rodriguez",
			Email:       "emily.r@globalretail.com",
			Phone:       "+1 (555) 345-6789",
			Company:     "Global Retail Inc",
			Position:    "Procurement Manager",
			Status:      entities.StatusCold,
			LastContact: date("2023-12-20"),
			Tags:        []string{"retail"},
		},
	}
}

func seedDeals(contacts []entities.Contact) []entities.Deal {
	byID := make(map[string]entities.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
	}

	deal := func(id, title string, value float64, stageID, contactID string, probability int, close, created string, description string) entities.Deal {
		return entities.Deal{
			ID:          id,
			Title:       title,
			Value:       value,
			Stage:       stage(stageID),
			ContactID:   contactID,
			Contact:     cloneContact(byID[contactID]),
			Probability: probability,
			CloseDate:   date(close),
			Description: description,
			Activities:  []entities.Activity{},
			CreatedAt:   date(created),
			UpdatedAt:   date(created),
		}
	}

	return []entities.Deal{
		deal("1", "Enterprise Platform License", 120000, "negotiation", "1", 80,
			"2024-03-01", "2024-01-12", "Annual license for the full platform suite."),
		deal("2", "Cloud Migration Project", 85000, "proposal", "2", 60,
			"2024-02-15", "2024-01-08", "Lift-and-shift plus managed services."),
		deal("3", "Retail Analytics Pilot", 25000, "proposal", "3", 40,
			"2024-04-01", "2024-01-05", "Three-month pilot across two regions."),
		deal("4", "Support Contract Renewal", 45000, "closed-won", "1", 100,
			"2024-01-10", "2023-12-18", "Twelve-month premium support renewal."),
		deal("5", "Developer Seats Expansion", 30000, "closed-won", "2", 100,
			"2024-01-05", "2023-12-10", "Fifty additional developer seats."),
	}
}

func seedTasks() []entities.Task {
	return []entities.Task{
		{
			ID:          "1",
			Title:       "Follow up on platform demo",
			Description: "Send recap and pricing sheet after Thursday's demo.",
			Priority:    entities.PriorityHigh,
			Status:      entities.TaskTodo,
			DueDate:     date("2024-01-22"),
			AssignedTo:  "John Doe",
			ContactID:   "1",
			DealID:      "1",
			Tags:        []string{"sales", "follow-up"},
			CreatedAt:   date("2024-01-15"),
			UpdatedAt:   date("2024-01-15"),
		},
		{
			ID:          "2",
			Title:       "Prepare migration proposal",
			Description: "Draft scope and timeline for the cloud migration.",
			Priority:    entities.PriorityUrgent,
			Status:      entities.TaskInProgress,
			DueDate:     date("2024-01-18"),
			AssignedTo:  "Jane Smith",
			ContactID:   "2",
			DealID:      "2",
			Tags:        []string{"proposal"},
			CreatedAt:   date("2024-01-10"),
			UpdatedAt:   date("2024-01-14"),
		},
		{
			ID:          "3",
			Title:       "Quarterly account review",
			Description: "Review renewal accounts and churn risk.",
			Priority:    entities.PriorityMedium,
			Status:      entities.TaskCompleted,
			DueDate:     date("2024-01-12"),
			AssignedTo:  "Mike Johnson",
			Tags:        []string{"internal"},
			CreatedAt:   date("2024-01-02"),
			UpdatedAt:   date("2024-01-12"),
		},
		{
			ID:          "4",
			Title:       "Re-engage Global Retail",
			Description: "Cold account since December; schedule intro call.",
			Priority:    entities.PriorityLow,
			Status:      entities.TaskTodo,
			DueDate:     date("2024-02-01"),
			AssignedTo:  "Mike Johnson",
			ContactID:   "3",
			Tags:        []string{"outreach"},
			CreatedAt:   date("2024-01-09"),
			UpdatedAt:   date("2024-01-09"),
		},
	}
}

func seedUsers() []entities.User {
	return []entities.User{
		{
			ID:          "1",
			Name:        "John Doe",
			Email:       "john.doe@company.com",
			Role:        entities.RoleAdmin,
			Department:  "Sales",
			Phone:       "+1 (555) 123-4567",
			JoinDate:    date("2023-01-15"),
			Status:      entities.UserActive,
			Permissions: []string{"all"},
		},
		{
			ID:          "2",
			Name:        "Jane Smith",
			Email:       "jane.smith@company.com",
			Role:        entities.RoleManager,
			Department:  "Sales",
			Phone:       "+1 (555) 234-5678",
			JoinDate:    date("2023-03-20"),
			Status:      entities.UserActive,
			Permissions: []string{"deals", "contacts", "tasks"},
		},
		{
			ID:          "3",
			Name:        "Mike Johnson",
			Email:       "mike.johnson@company.com",
			Role:        entities.RoleSales,
			Department:  "Sales",
			Phone:       "+1 (555) 345-6789",
			JoinDate:    date("2023-06-10"),
			Status:      entities.UserActive,
			Permissions: []string{"deals", "contacts"},
		},
	}
}
