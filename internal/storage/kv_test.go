package storage

import (
	"context"
	"testing"

	"github.com/ahorro/ahorro/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV_GetMissingKey(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	kv := NewSQLiteKV(db)

	value, found, err := kv.Get(context.Background(), "goals_data")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLiteKV_PutOverwritesWholeValue(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	kv := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "goals_data", `[{"id":"a"}]`))
	require.NoError(t, kv.Put(ctx, "goals_data", `[{"id":"a"},{"id":"b"}]`))

	value, found, err := kv.Get(ctx, "goals_data")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"},{"id":"b"}]`, value)
}

func TestSQLiteKV_DeleteAbsentKeyIsNoError(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	kv := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, kv.Delete(ctx, "app_pin"))

	require.NoError(t, kv.Put(ctx, "app_pin", "1234"))
	require.NoError(t, kv.Delete(ctx, "app_pin"))

	_, found, err := kv.Get(ctx, "app_pin")
	require.NoError(t, err)
	assert.False(t, found)
}
