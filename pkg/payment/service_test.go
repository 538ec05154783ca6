package payment

import (
	"context"
	"testing"
	"time"

	"github.com/ahorro/ahorro/internal/event_bus"
	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newTestService() (*ServiceImpl, *StubRepository, *event_bus.EventBus) {
	repo := NewStubRepository()
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)}
	return NewService(repo, clock, bus), repo, bus
}

func seedPayment(t *testing.T, repo *StubRepository, p Payment) {
	t.Helper()
	payments, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(ctx, append(payments, p)))
}

func TestServiceImpl_Create(t *testing.T) {
	service, repo, _ := newTestService()

	created, err := service.Create(ctx, Payment{
		Name:      "Rent",
		Amount:    1200,
		DueDate:   "2024-03-05",
		Category:  "Housing",
		Frequency: schedule.Monthly,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0.0, created.PaidAmount)
	assert.Equal(t, Palette[0], created.Color)

	second, err := service.Create(ctx, Payment{Name: "Gym", Amount: 40, DueDate: "2024-03-10", Frequency: schedule.Monthly})
	require.NoError(t, err)
	assert.Equal(t, Palette[1], second.Color)

	payments, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestServiceImpl_Update_PreservesPaymentHistory(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{
		ID:         "p-1",
		Name:       "Rent",
		Amount:     1200,
		PaidAmount: 600,
		DueDate:    "2024-03-05",
		Frequency:  schedule.Monthly,
		Color:      "cyan",
	})

	updated, err := service.Update(ctx, Payment{
		ID:        "p-1",
		Name:      "Rent + utilities",
		Amount:    1350,
		DueDate:   "2024-03-07",
		Category:  "Housing",
		Frequency: schedule.Monthly,
	})
	require.NoError(t, err)

	assert.Equal(t, "Rent + utilities", updated.Name)
	assert.Equal(t, 1350.0, updated.Amount)
	assert.Equal(t, "2024-03-07", updated.DueDate)
	// Untouched by edits:
	assert.Equal(t, 600.0, updated.PaidAmount)
	assert.Equal(t, "cyan", updated.Color)
}

func TestServiceImpl_Update_NotFound(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Update(ctx, Payment{ID: "missing", Name: "x", Amount: 1})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestServiceImpl_List_CoveredLastThenByDueDate(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{ID: "covered", Name: "Done", Amount: 50, PaidAmount: 50, DueDate: "2024-03-01"})
	seedPayment(t, repo, Payment{ID: "late", Name: "Late", Amount: 80, DueDate: "2024-03-20"})
	seedPayment(t, repo, Payment{ID: "soon", Name: "Soon", Amount: 30, DueDate: "2024-03-02"})

	payments, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, "soon", payments[0].ID)
	assert.Equal(t, "late", payments[1].ID)
	assert.Equal(t, "covered", payments[2].ID)
}

func TestServiceImpl_Contribute_ClampsToAmount(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{ID: "p-1", Name: "Rent", Amount: 1200, PaidAmount: 1000, DueDate: "2024-03-05"})

	payments, err := service.Contribute(ctx, "p-1", 500)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 1200.0, payments[0].PaidAmount)
}

func TestServiceImpl_Contribute_StaleIdIsNoOp(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{ID: "p-1", Name: "Rent", Amount: 1200, PaidAmount: 100, DueDate: "2024-03-05"})

	payments, err := service.Contribute(ctx, "gone", 50)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 100.0, payments[0].PaidAmount)
}

// Covering a weekly payment due 2024-03-01 must close it out and insert a
// fresh one due 2024-03-08 right after it.
func TestServiceImpl_Contribute_FullWeeklyCycle(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{
		ID:        "p-1",
		Name:      "Groceries",
		Amount:    100,
		DueDate:   "2024-03-01",
		Category:  "Food",
		Frequency: schedule.Weekly,
		Color:     "teal",
	})

	payments, err := service.Contribute(ctx, "p-1", 100)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	original := payments[0]
	successor := payments[1]

	assert.Equal(t, "p-1", original.ID)
	assert.Equal(t, 100.0, original.PaidAmount)
	assert.Equal(t, schedule.OneTime, original.Frequency)
	assert.Equal(t, "2024-03-01", original.DueDate)

	assert.NotEqual(t, "p-1", successor.ID)
	assert.NotEmpty(t, successor.ID)
	assert.Equal(t, 0.0, successor.PaidAmount)
	assert.Equal(t, "2024-03-08", successor.DueDate)
	assert.Equal(t, schedule.Weekly, successor.Frequency)
	assert.Equal(t, "Groceries", successor.Name)
	assert.Equal(t, "teal", successor.Color)
}

func TestServiceImpl_Contribute_OneTimeCoverageSpawnsNothing(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{ID: "p-1", Name: "Car repair", Amount: 800, DueDate: "2024-03-15", Frequency: schedule.OneTime})

	payments, err := service.Contribute(ctx, "p-1", 800)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].IsCovered())
}

func TestServiceImpl_Contribute_FrozenPaymentNeverAdvancesAgain(t *testing.T) {
	service, repo, _ := newTestService()

	seedPayment(t, repo, Payment{ID: "p-1", Name: "Groceries", Amount: 100, PaidAmount: 90, DueDate: "2024-03-01", Frequency: schedule.Weekly})

	payments, err := service.Contribute(ctx, "p-1", 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	payments, err = service.Contribute(ctx, "p-1", 10)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, schedule.OneTime, payments[0].Frequency)
}

func TestServiceImpl_Contribute_PublishesAdvanceEvent(t *testing.T) {
	service, repo, bus := newTestService()

	var published []event_bus.PaymentAdvancedData
	bus.Subscribe(event_bus.PaymentAdvanced, func(e event_bus.Event) error {
		if data, ok := e.Data.(event_bus.PaymentAdvancedData); ok {
			published = append(published, data)
		}
		return nil
	})

	seedPayment(t, repo, Payment{ID: "p-1", Name: "Groceries", Amount: 100, DueDate: "2024-01-31", Frequency: schedule.Monthly})

	_, err := service.Contribute(ctx, "p-1", 100)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "p-1", published[0].PaymentID)
	assert.Equal(t, "2024-02-29", published[0].NextDueDate)
}
