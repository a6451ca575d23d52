package memory

import (
	"context"
	"testing"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Memory {
	t.Helper()
	m := New(context.Background(), zap.NewNop().Sugar())
	require.NoError(t, m.OnStart(context.Background()))
	return m
}

func TestOnStartSeedsCollections(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	contacts, err := m.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	deals, err := m.ListDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 5)

	tasks, err := m.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
}

func TestSeedDealsSpanThreeStagesWithTwoWon(t *testing.T) {
	m := newTestStore(t)

	deals, err := m.ListDeals(context.Background())
	require.NoError(t, err)

	stages := map[string]int{}
	won := 0
	var wonValue float64
	for _, d := range deals {
		stages[d.Stage.ID]++
		if d.Stage.Name == entities.WonStageName {
			won++
			wonValue += d.Value
		}
	}

	require.Len(t, stages, 3)
	require.Equal(t, 2, won)
	require.InDelta(t, 75000.0, wonValue, 0.001)
}

func TestCreateContactPrepends(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	created, err := m.CreateContact(ctx, entities.Contact{Name: "New Lead", Email: "lead@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	contacts, err := m.ListContacts(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ID, contacts[0].ID)
}

func TestCreateContactIDsAreUnique(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c, err := m.CreateContact(ctx, entities.Contact{Name: "Bulk"})
		require.NoError(t, err)
		require.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}

func TestUpdateContactPartial(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	before, err := m.GetContact(ctx, "1")
	require.NoError(t, err)

	status := entities.StatusCold
	after, err := m.UpdateContact(ctx, "1", entities.ContactUpdate{Status: &status})
	require.NoError(t, err)

	require.Equal(t, entities.StatusCold, after.Status)
	require.Equal(t, before.Name, after.Name)
	require.Equal(t, before.Email, after.Email)
	require.Equal(t, before.Company, after.Company)
}

func TestUpdateContactNotFound(t *testing.T) {
	m := newTestStore(t)

	name := "ghost"
	_, err := m.UpdateContact(context.Background(), "404", entities.ContactUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrContactNotFound)
}

func TestDeleteContact(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, m.DeleteContact(ctx, "2"))

	_, err := m.GetContact(ctx, "2")
	require.ErrorIs(t, err, entities.ErrContactNotFound)

	require.ErrorIs(t, m.DeleteContact(ctx, "2"), entities.ErrContactNotFound)
}

func TestContactEditDoesNotTouchDealSnapshot(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	deal, err := m.GetDeal(ctx, "1")
	require.NoError(t, err)
	snapshotName := deal.Contact.Name

	name := "Renamed Person"
	_, err = m.UpdateContact(ctx, deal.ContactID, entities.ContactUpdate{Name: &name})
	require.NoError(t, err)

	after, err := m.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	require.Equal(t, snapshotName, after.Contact.Name)
}

func TestUpdateDealRefreshesUpdatedAt(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	value := 99000.0
	deal, err := m.UpdateDeal(ctx, "1", entities.DealUpdate{Value: &value})
	require.NoError(t, err)
	require.Equal(t, fixed, deal.UpdatedAt)
	require.InDelta(t, 99000.0, deal.Value, 0.001)
}

func TestUpdateDealStageResolution(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	stageID := "closed-won"
	deal, err := m.UpdateDeal(ctx, "1", entities.DealUpdate{StageID: &stageID})
	require.NoError(t, err)
	require.Equal(t, "closed-won", deal.Stage.ID)
	require.Equal(t, entities.WonStageName, deal.Stage.Name)
}

func TestUpdateDealUnknownStage(t *testing.T) {
	m := newTestStore(t)

	stageID := "archived"
	_, err := m.UpdateDeal(context.Background(), "1", entities.DealUpdate{StageID: &stageID})
	require.ErrorIs(t, err, entities.ErrStageNotFound)
}

func TestUpdateDealFailedCallChangesNothing(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	before, err := m.GetDeal(ctx, "1")
	require.NoError(t, err)

	title := "Mutated Title"
	value := 1.0
	stageID := "archived"
	_, err = m.UpdateDeal(ctx, "1", entities.DealUpdate{
		Title:   &title,
		Value:   &value,
		StageID: &stageID,
	})
	require.ErrorIs(t, err, entities.ErrStageNotFound)

	after, err := m.GetDeal(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestCreateDealPrepends(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	stage, _ := entities.StageByID("lead")
	created, err := m.CreateDeal(ctx, entities.Deal{Title: "Fresh", Stage: stage, ContactID: "1"})
	require.NoError(t, err)

	deals, err := m.ListDeals(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ID, deals[0].ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())
}

func TestListReturnsClones(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	contacts, err := m.ListContacts(ctx)
	require.NoError(t, err)
	contacts[0].Name = "mutated"

	again, err := m.ListContacts(ctx)
	require.NoError(t, err)
	require.NotEqual(t, "mutated", again[0].Name)
}

func TestTaskLifecycle(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	created, err := m.CreateTask(ctx, entities.Task{
		Title:    "Call vendor",
		Priority: entities.PriorityHigh,
		Status:   entities.TaskTodo,
	})
	require.NoError(t, err)

	status := entities.TaskCompleted
	updated, err := m.UpdateTask(ctx, created.ID, entities.TaskUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entities.TaskCompleted, updated.Status)
	require.Equal(t, created.Title, updated.Title)

	require.NoError(t, m.DeleteTask(ctx, created.ID))
	_, err = m.GetTask(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestUserLifecycle(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	created, err := m.CreateUser(ctx, entities.User{
		Name:   "Alex Kim",
		Email:  "alex@crm.local",
		Role:   entities.RoleSales,
		Status: entities.UserActive,
	})
	require.NoError(t, err)

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ID, users[len(users)-1].ID)

	status := entities.UserInactive
	updated, err := m.UpdateUser(ctx, created.ID, entities.UserUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entities.UserInactive, updated.Status)

	require.NoError(t, m.DeleteUser(ctx, created.ID))
	require.ErrorIs(t, m.DeleteUser(ctx, created.ID), entities.ErrUserNotFound)
}
