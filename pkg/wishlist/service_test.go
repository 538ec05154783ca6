package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/ahorro/ahorro/internal/event_bus"
	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/goal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newTestService() (*ServiceImpl, *StubRepository, *goal.StubRepository) {
	repo := NewStubRepository()
	goalRepo := goal.NewStubRepository()
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)}
	goalService := goal.NewService(goalRepo, clock, event_bus.NewEventBus())
	return NewService(repo, goalService), repo, goalRepo
}

func amount(v float64) *float64 { return &v }

func TestServiceImpl_CreatePrependsWithFreshID(t *testing.T) {
	service, repo, _ := newTestService()

	first, err := service.Create(ctx, Item{Name: "Headphones", Category: "Tech"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := service.Create(ctx, Item{Name: "Monitor"})
	require.NoError(t, err)

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestServiceImpl_Update_NotFound(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Update(ctx, Item{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestServiceImpl_Delete(t *testing.T) {
	service, repo, _ := newTestService()
	require.NoError(t, repo.ReplaceAll(ctx, []Item{{ID: "w-1", Name: "Headphones"}}))

	deleted, err := service.Delete(ctx, "w-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.Delete(ctx, "w-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestServiceImpl_ConvertToGoal(t *testing.T) {
	service, repo, goalRepo := newTestService()
	require.NoError(t, repo.ReplaceAll(ctx, []Item{{
		ID:              "w-1",
		Name:            "Standing desk",
		Category:        "Office",
		Priority:        goal.PriorityMedium,
		EstimatedAmount: amount(7500),
		URL:             "https://example.com/desk",
	}}))

	created, err := service.ConvertToGoal(ctx, "w-1")
	require.NoError(t, err)

	assert.Equal(t, "Standing desk", created.Name)
	assert.Equal(t, 7500.0, created.TargetAmount)
	assert.Equal(t, 0.0, created.SavedAmount)
	assert.Equal(t, "Office", created.Category)
	assert.Equal(t, goal.PriorityMedium, created.Priority)

	// The item is gone from the wishlist and the goal is persisted.
	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	goals, err := goalRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, created.ID, goals[0].ID)
}

func TestServiceImpl_ConvertToGoal_NoEstimate(t *testing.T) {
	service, repo, _ := newTestService()
	require.NoError(t, repo.ReplaceAll(ctx, []Item{{ID: "w-1", Name: "Someday thing", Priority: goal.PriorityLow}}))

	created, err := service.ConvertToGoal(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.TargetAmount)
}

func TestServiceImpl_ConvertToGoal_NotFound(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.ConvertToGoal(ctx, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}
