package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"streakhub/shared/docstore"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func stores(t *testing.T) map[string]docstore.Store {
	t.Helper()

	return map[string]docstore.Store{
		"file":   docstore.NewFileStore(t.TempDir()),
		"memory": docstore.NewMemoryStore(),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := snapshot{ID: "share-1", Title: "Buy milk"}
			require.NoError(t, store.Put(ctx, "shares", in.ID, in))

			var out snapshot
			require.NoError(t, store.Get(ctx, "shares", "share-1", &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestStore_GetUnknownID(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var out snapshot
			err := store.Get(ctx, "shares", "missing", &out)
			assert.True(t, errors.Is(err, docstore.ErrNotFound))
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "shares", "share-1", snapshot{ID: "share-1"}))
			require.NoError(t, store.Delete(ctx, "shares", "share-1"))

			var out snapshot
			err := store.Get(ctx, "shares", "share-1", &out)
			assert.True(t, errors.Is(err, docstore.ErrNotFound))

			err = store.Delete(ctx, "shares", "share-1")
			assert.True(t, errors.Is(err, docstore.ErrNotFound))
		})
	}
}

func TestStore_All(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "shares", "a", snapshot{ID: "a"}))
			require.NoError(t, store.Put(ctx, "shares", "b", snapshot{ID: "b"}))

			docs, err := store.All(ctx, "shares")
			require.NoError(t, err)
			assert.Len(t, docs, 2)
		})
	}
}

func TestFileStore_RewritesWholeCollection(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := docstore.NewFileStore(dir)

	require.NoError(t, store.Put(ctx, "shares", "a", snapshot{ID: "a", Title: "first"}))
	require.NoError(t, store.Put(ctx, "shares", "b", snapshot{ID: "b", Title: "second"}))

	raw, err := os.ReadFile(filepath.Join(dir, "shares.json"))
	require.NoError(t, err)

	docs := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(raw, &docs))
	assert.Len(t, docs, 2)

	// A fresh store over the same directory sees the persisted documents.
	reopened := docstore.NewFileStore(dir)

	var out snapshot
	require.NoError(t, reopened.Get(ctx, "shares", "a", &out))
	assert.Equal(t, "first", out.Title)
}
