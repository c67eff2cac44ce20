package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDocumentStore_ScanOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocumentStore()

	require.NoError(t, s.Put(ctx, "users", Document{"id": int64(30), "email": "a@b.c"}))
	require.NoError(t, s.Put(ctx, "users", Document{"id": int64(10), "email": "a@b.c"}))
	require.NoError(t, s.Put(ctx, "users", Document{"id": int64(20), "email": "x@y.z"}))
	require.NoError(t, s.Put(ctx, "turmas", Document{"id": int64(1)}))

	all, err := s.Scan(ctx, "users", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(10), all[0]["id"])
	assert.Equal(t, int64(30), all[2]["id"])

	matched, err := s.Scan(ctx, "users", Filter{"email": "a@b.c"})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, int64(10), matched[0]["id"])
	assert.Equal(t, int64(30), matched[1]["id"])

	none, err := s.Scan(ctx, "atividades", nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryDocumentStore_GetAndProjection(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocumentStore()
	require.NoError(t, s.Put(ctx, "users", Document{"id": int64(1), "email": "a@b.c", "senha": "h"}))

	doc, err := s.Get(ctx, "users", 1, "senha")
	require.NoError(t, err)
	assert.Equal(t, Document{"senha": "h"}, doc)

	_, err = s.Get(ctx, "users", 2)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryDocumentStore_PutReplacesAndCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocumentStore()

	doc := Document{"id": int64(1), "nome": "A"}
	require.NoError(t, s.Put(ctx, "turmas", doc))
	doc["nome"] = "mutated after put"

	got, err := s.Get(ctx, "turmas", 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got["nome"])

	require.NoError(t, s.Put(ctx, "turmas", Document{"id": int64(1), "nome": "B"}))
	got, err = s.Get(ctx, "turmas", 1)
	require.NoError(t, err)
	assert.Equal(t, "B", got["nome"])
}

func TestMemoryDocumentStore_PutWithoutID(t *testing.T) {
	err := NewMemoryDocumentStore().Put(context.Background(), "users", Document{"email": "a@b.c"})
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestMemoryDocumentStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocumentStore()
	require.NoError(t, s.Put(ctx, "users", Document{"id": int64(1)}))

	require.NoError(t, s.Delete(ctx, "users", 1))
	require.NoError(t, s.Delete(ctx, "users", 1))
	require.NoError(t, s.Delete(ctx, "never-created", 1))

	_, err := s.Get(ctx, "users", 1)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryDocumentStore_ContextErrors(t *testing.T) {
	s := NewMemoryDocumentStore()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Scan(canceled, "users", nil)
	assert.ErrorIs(t, err, ErrRemote)
	assert.NotErrorIs(t, err, ErrRemoteTransient)

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err = s.Get(expired, "users", 1)
	assert.ErrorIs(t, err, ErrRemoteTransient)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
