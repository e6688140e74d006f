package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	t.Run("absent key", func(t *testing.T) {
		_, found, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyBills, []byte(`[{"id":"bill_1"}]`)))

		data, found, err := store.Get(ctx, KeyBills)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `[{"id":"bill_1"}]`, string(data))
	})

	t.Run("set overwrites whole value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyBills, []byte(`[]`)))

		data, found, err := store.Get(ctx, KeyBills)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `[]`, string(data))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, KeyBills))
		_, found, err := store.Get(ctx, KeyBills)
		require.NoError(t, err)
		assert.False(t, found)

		// deleting an absent key is fine
		require.NoError(t, store.Delete(ctx, KeyBills))
	})
}

func TestFileStoreRequiresDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, KeyBills)
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte(`[1,2,3]`)
	require.NoError(t, store.Set(ctx, KeyBills, value))

	// mutating the caller's slice must not change the stored value
	value[0] = 'X'

	data, found, err := store.Get(ctx, KeyBills)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[1,2,3]`, string(data))

	require.NoError(t, store.Delete(ctx, KeyBills))
	_, found, _ = store.Get(ctx, KeyBills)
	assert.False(t, found)
}
