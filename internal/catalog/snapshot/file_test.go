package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetSet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, store.Set(ctx, "morph:products", payload))

	got, err := store.Get(ctx, "morph:products")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "morph:products")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "morph:categories", []byte(`["a"]`)))
	require.NoError(t, store.Set(ctx, "morph:categories", []byte(`["b"]`)))

	got, err := store.Get(ctx, "morph:categories")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["b"]`), got)
}
