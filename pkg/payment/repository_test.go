package payment

import (
	"context"
	"testing"

	"github.com/ahorro/ahorro/internal/storage"
	"github.com/ahorro/ahorro/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryImpl_FindAll_Empty(t *testing.T) {
	kv := storage.NewStubKV()
	repo := NewRepository(kv)

	payments, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestRepositoryImpl_FindAll_MalformedFallsBackToEmpty(t *testing.T) {
	kv := storage.NewStubKV()
	require.NoError(t, kv.Put(context.Background(), storageKey, "{not json"))
	repo := NewRepository(kv)

	payments, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestRepositoryImpl_FindAll_MigratesLegacyIsPaid(t *testing.T) {
	kv := storage.NewStubKV()
	legacy := `[
		{"id":"a","name":"Rent","amount":1200,"dueDate":"2024-03-05","frequency":"Monthly","color":"teal","isPaid":true},
		{"id":"b","name":"Gym","amount":40,"dueDate":"2024-03-10","frequency":"Monthly","color":"cyan","isPaid":false}
	]`
	require.NoError(t, kv.Put(context.Background(), storageKey, legacy))
	repo := NewRepository(kv)

	payments, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 1200.0, payments[0].PaidAmount)
	assert.True(t, payments[0].IsCovered())
	assert.Equal(t, 0.0, payments[1].PaidAmount)

	// The migration is written back: a reload sees plain paidAmount data.
	raw, found, err := kv.Get(context.Background(), storageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, raw, "isPaid")
	assert.Contains(t, raw, "paidAmount")
}

func TestRepositoryImpl_FindAll_RepairsBlankAndDuplicateIDs(t *testing.T) {
	kv := storage.NewStubKV()
	stored := `[
		{"id":"","name":"A","amount":10,"paidAmount":0,"dueDate":"2024-03-01","frequency":"OneTime"},
		{"id":"dup","name":"B","amount":10,"paidAmount":0,"dueDate":"2024-03-02","frequency":"OneTime"},
		{"id":"dup","name":"C","amount":10,"paidAmount":0,"dueDate":"2024-03-03","frequency":"OneTime"}
	]`
	require.NoError(t, kv.Put(context.Background(), storageKey, stored))
	repo := NewRepository(kv)

	payments, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 3)

	seen := make(map[string]bool)
	for _, p := range payments {
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "id %s appears twice", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, "dup", payments[1].ID)
}

func TestRepositoryImpl_RoundTrip(t *testing.T) {
	kv := storage.NewStubKV()
	repo := NewRepository(kv)

	in := []Payment{{
		ID:        "p-1",
		Name:      "Rent",
		Amount:    1200,
		DueDate:   "2024-03-05",
		Category:  "Housing",
		Frequency: schedule.Monthly,
		Color:     "teal",
	}}
	require.NoError(t, repo.ReplaceAll(context.Background(), in))

	out, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
