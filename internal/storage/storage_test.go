package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_RoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	data := []byte("%PDF-1.4 fake pdf bytes")
	require.NoError(t, store.Put(ctx, "docs/2026/03/a.pdf", data))

	got, err := store.Get(ctx, "docs/2026/03/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, "docs/2026/03/a.pdf"))
	_, err = store.Get(ctx, "docs/2026/03/a.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStore_MissingKey(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "never/was/here.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../escape.pdf", "/etc/passwd", "a/../../b", "."} {
		t.Run(key, func(t *testing.T) {
			_, err := store.Get(ctx, key)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotFound)

			assert.Error(t, store.Put(ctx, key, []byte("x")))
		})
	}
}

func TestFSStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "gone.pdf"))
}

func TestFSStore_RequiresRoot(t *testing.T) {
	_, err := NewFSStore("", nil)
	assert.Error(t, err)
}

func TestFSStore_CanceledContext(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Get(ctx, "a.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}
