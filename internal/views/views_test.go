package views

import (
	"testing"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"

	"github.com/stretchr/testify/require"
)

func testContacts() []entities.Contact {
	return []entities.Contact{
		{ID: "1", Name: "Sarah Johnson", Company: "TechCorp", Email: "sarah@techcorp.com", Status: entities.StatusHot},
		{ID: "2", Name: "Michael Chen", Company: "Innovate Labs", Email: "michael@innovate.io", Status: entities.StatusWarm},
		{ID: "3", Name: "Emily Rodriguez", Company: "Global Retail", Email: "emily@globalretail.com", Status: entities.StatusCold},
	}
}

func TestContactsSearchMatchesNameCompanyEmail(t *testing.T) {
	contacts := testContacts()

	byName := Contacts(contacts, entities.ContactQuery{Search: "sarah"})
	require.Len(t, byName, 1)
	require.Equal(t, "1", byName[0].ID)

	byCompany := Contacts(contacts, entities.ContactQuery{Search: "innovate"})
	require.Len(t, byCompany, 1)
	require.Equal(t, "2", byCompany[0].ID)

	byEmail := Contacts(contacts, entities.ContactQuery{Search: "globalretail.com"})
	require.Len(t, byEmail, 1)
	require.Equal(t, "3", byEmail[0].ID)
}

func TestContactsSearchCaseInsensitive(t *testing.T) {
	contacts := testContacts()

	upper := Contacts(contacts, entities.ContactQuery{Search: "TECHCORP"})
	lower := Contacts(contacts, entities.ContactQuery{Search: "techcorp"})
	require.Equal(t, lower, upper)
	require.Len(t, upper, 1)
}

func TestContactsEmptySearchKeepsAll(t *testing.T) {
	contacts := testContacts()

	out := Contacts(contacts, entities.ContactQuery{})
	require.Equal(t, contacts, out)
}

func TestContactsStatusAllSentinel(t *testing.T) {
	contacts := testContacts()

	all := Contacts(contacts, entities.ContactQuery{Status: FilterAll})
	require.Len(t, all, 3)

	hot := Contacts(contacts, entities.ContactQuery{Status: "hot"})
	require.Len(t, hot, 1)
	require.Equal(t, entities.StatusHot, hot[0].Status)
}

func TestContactsIdempotent(t *testing.T) {
	contacts := testContacts()
	q := entities.ContactQuery{Search: "o", Status: FilterAll}

	first := Contacts(contacts, q)
	second := Contacts(first, q)
	require.Equal(t, first, second)
}

func testDeals() []entities.Deal {
	lead, _ := entities.StageByID("lead")
	proposal, _ := entities.StageByID("proposal")
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return []entities.Deal{
		{
			ID: "1", Title: "Enterprise License", Value: 120000, Probability: 75,
			Stage: proposal, CloseDate: base.AddDate(0, 2, 0), UpdatedAt: base.Add(2 * time.Hour),
			Contact: entities.Contact{Name: "Sarah Johnson", Company: "TechCorp"},
		},
		{
			ID: "2", Title: "Cloud Migration", Value: 85000, Probability: 60,
			Stage: lead, CloseDate: base.AddDate(0, 1, 0), UpdatedAt: base.Add(3 * time.Hour),
			Contact: entities.Contact{Name: "Michael Chen", Company: "Innovate Labs"},
		},
		{
			ID: "3", Title: "Starter Package", Value: 25000, Probability: 40,
			Stage: lead, CloseDate: base.AddDate(0, 3, 0), UpdatedAt: base.Add(time.Hour),
			Contact: entities.Contact{Name: "Emily Rodriguez", Company: "Global Retail"},
		},
	}
}

func TestDealsSearchMatchesContactFields(t *testing.T) {
	deals := testDeals()

	out := Deals(deals, entities.DealQuery{Search: "techcorp"})
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)
}

func TestDealsStageFilter(t *testing.T) {
	deals := testDeals()

	out := Deals(deals, entities.DealQuery{Stage: "lead"})
	require.Len(t, out, 2)
	for _, d := range out {
		require.Equal(t, "lead", d.Stage.ID)
	}

	all := Deals(deals, entities.DealQuery{Stage: FilterAll})
	require.Len(t, all, 3)
}

func TestDealsSortKeys(t *testing.T) {
	deals := testDeals()

	byValue := Deals(deals, entities.DealQuery{SortBy: DealSortValue})
	require.Equal(t, []string{"1", "2", "3"}, ids(byValue))

	byProbability := Deals(deals, entities.DealQuery{SortBy: DealSortProbability})
	require.Equal(t, []string{"1", "2", "3"}, ids(byProbability))

	byCloseDate := Deals(deals, entities.DealQuery{SortBy: DealSortCloseDate})
	require.Equal(t, []string{"2", "1", "3"}, ids(byCloseDate))

	byUpdated := Deals(deals, entities.DealQuery{SortBy: DealSortUpdated})
	require.Equal(t, []string{"2", "1", "3"}, ids(byUpdated))
}

func TestDealsUnknownSortKeepsOrder(t *testing.T) {
	deals := testDeals()

	out := Deals(deals, entities.DealQuery{SortBy: "bogus"})
	require.Equal(t, []string{"1", "2", "3"}, ids(out))
}

func ids(deals []entities.Deal) []string {
	res := make([]string, 0, len(deals))
	for _, d := range deals {
		res = append(res, d.ID)
	}
	return res
}

func testTasks() []entities.Task {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return []entities.Task{
		{ID: "1", Title: "Follow up with Sarah", Description: "Contract terms", AssignedTo: "John Doe",
			Priority: entities.PriorityHigh, Status: entities.TaskTodo, DueDate: base.AddDate(0, 0, 2), UpdatedAt: base},
		{ID: "2", Title: "Prepare proposal", Description: "Cloud migration scope", AssignedTo: "Jane Smith",
			Priority: entities.PriorityUrgent, Status: entities.TaskInProgress, DueDate: base.AddDate(0, 0, 1), UpdatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Send invoice", Description: "Starter package", AssignedTo: "John Doe",
			Priority: entities.PriorityLow, Status: entities.TaskCompleted, DueDate: base.AddDate(0, 0, 5), UpdatedAt: base.Add(2 * time.Hour)},
	}
}

func TestTasksStatusAndPriorityAreANDed(t *testing.T) {
	tasks := testTasks()

	out := Tasks(tasks, entities.TaskQuery{Status: "todo", Priority: "high"})
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	none := Tasks(tasks, entities.TaskQuery{Status: "todo", Priority: "low"})
	require.Empty(t, none)
}

func TestTasksSearchMatchesAssignee(t *testing.T) {
	tasks := testTasks()

	out := Tasks(tasks, entities.TaskQuery{Search: "john"})
	require.Len(t, out, 2)
}

func TestTasksSortKeys(t *testing.T) {
	tasks := testTasks()

	byDue := Tasks(tasks, entities.TaskQuery{SortBy: TaskSortDueDate})
	require.Equal(t, "2", byDue[0].ID)

	byPriority := Tasks(tasks, entities.TaskQuery{SortBy: TaskSortPriority})
	require.Equal(t, "2", byPriority[0].ID)
	require.Equal(t, "3", byPriority[2].ID)

	byStatus := Tasks(tasks, entities.TaskQuery{SortBy: TaskSortStatus})
	require.Equal(t, "1", byStatus[0].ID)
	require.Equal(t, "3", byStatus[2].ID)

	byUpdated := Tasks(tasks, entities.TaskQuery{SortBy: TaskSortUpdated})
	require.Equal(t, "3", byUpdated[0].ID)
}
