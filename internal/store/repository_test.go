package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/models"
)

func newTestStorages(t *testing.T) (*Storages, DocumentStore) {
	t.Helper()
	docs := NewMemoryDocumentStore()
	return NewStorages(docs, nil, logger.Nop()), docs
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorages(t)

	ana := models.User{ID: 2, Name: "Ana", Email: "ana@escola.br", PasswordHash: "h1", Role: models.RoleProfessor, AssignedClassName: "3A", AssignedCourseName: "Math"}
	dup := models.User{ID: 1, Name: "Ana Dup", Email: "ana@escola.br", PasswordHash: "h2", Role: models.RoleStudent}
	bob := models.User{ID: 3, Name: "Bob", Email: "bob@escola.br", PasswordHash: "h3", Role: models.RoleAdmin}
	for _, u := range []models.User{ana, dup, bob} {
		require.NoError(t, s.UserRepository.Save(ctx, u))
	}

	found, err := s.UserRepository.FindByEmail(ctx, "ana@escola.br")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, dup, found[0], "lowest id first")
	assert.Equal(t, ana, found[1])

	profs, err := s.UserRepository.FindByRole(ctx, models.RoleProfessor)
	require.NoError(t, err)
	assert.Equal(t, []models.User{ana}, profs)

	all, err := s.UserRepository.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.UserRepository.FindByEmail(ctx, "nobody@escola.br")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepository_GetPasswordHash(t *testing.T) {
	ctx := context.Background()
	s, docs := newTestStorages(t)

	require.NoError(t, s.UserRepository.Save(ctx, models.User{ID: 1, Email: "a@b.c", PasswordHash: "stored"}))
	require.NoError(t, docs.Put(ctx, "users", Document{"id": int64(2), "email": "x@y.z"}))

	hash, err := s.UserRepository.GetPasswordHash(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "stored", hash)

	_, err = s.UserRepository.GetPasswordHash(ctx, 2)
	assert.ErrorIs(t, err, ErrPasswordHashNotFound)

	_, err = s.UserRepository.GetPasswordHash(ctx, 3)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestUserRepository_DecodesLooseRecords(t *testing.T) {
	ctx := context.Background()
	s, docs := newTestStorages(t)

	require.NoError(t, docs.Put(ctx, "users", Document{
		"id":    json.Number("1712000000000"),
		"email": "a@b.c",
		"senha": "h",
		"tipo":  "gestor",
	}))

	users, err := s.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1712000000000), users[0].ID)
	assert.Equal(t, models.RoleStudent, users[0].Role, "unknown role decodes as least privileged")
	assert.Empty(t, users[0].Name)
}

func TestUserRepository_MalformedRecord(t *testing.T) {
	tests := map[string]Document{
		"missing email":   {"id": int64(1)},
		"numeric email":   {"id": int64(1), "email": 5},
		"numeric senha":   {"id": int64(1), "email": "a@b.c", "senha": 123},
		"non-integer id":  {"id": "abc", "email": "a@b.c"},
		"role not string": {"id": int64(1), "email": "a@b.c", "tipo": true},
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			docs := &stubDocumentStore{docs: []Document{doc}}
			repo := NewUserRepository(docs, logger.Nop())

			_, err := repo.List(ctx)
			assert.ErrorIs(t, err, ErrMalformedDocument)
			assert.ErrorIs(t, err, ErrRemote)
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorages(t)

	require.NoError(t, s.UserRepository.Save(ctx, models.User{ID: 1, Email: "a@b.c"}))
	require.NoError(t, s.UserRepository.Delete(ctx, 1))

	all, err := s.UserRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClassRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, docs := newTestStorages(t)

	class := models.Class{ID: 5, Name: "3A", Professor: "Ana", Students: []string{"Bia", "Caio"}}
	require.NoError(t, s.ClassRepository.Save(ctx, class))

	raw, err := docs.Get(ctx, "turmas", 5)
	require.NoError(t, err)
	assert.Equal(t, "Bia, Caio", raw["alunos"])

	got, err := s.ClassRepository.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, class, got)

	_, err = s.ClassRepository.Get(ctx, 6)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, s.ClassRepository.Delete(ctx, 5))
	list, err := s.ClassRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClassRepository_StudentsShapes(t *testing.T) {
	ctx := context.Background()
	s, docs := newTestStorages(t)

	require.NoError(t, docs.Put(ctx, "turmas", Document{"id": int64(1), "nome": "A", "alunos": []any{"Bia", "Caio"}}))
	require.NoError(t, docs.Put(ctx, "turmas", Document{"id": int64(2), "nome": "B"}))
	require.NoError(t, docs.Put(ctx, "turmas", Document{"id": int64(3), "nome": "C", "alunos": " Dani ,, Edu "}))

	list, err := s.ClassRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Bia", "Caio"}, list[0].Students)
	assert.Empty(t, list[1].Students)
	assert.Equal(t, []string{"Dani", "Edu"}, list[2].Students)

	require.NoError(t, docs.Put(ctx, "turmas", Document{"id": int64(4), "alunos": 12}))
	_, err = s.ClassRepository.List(ctx)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestActivityRepository_ListByClass(t *testing.T) {
	ctx := context.Background()
	s, docs := newTestStorages(t)

	require.NoError(t, s.ActivityRepository.Save(ctx, models.Activity{ID: 30, ClassID: 1, Description: "late"}))
	require.NoError(t, s.ActivityRepository.Save(ctx, models.Activity{ID: 10, ClassID: 1, Description: "early"}))
	require.NoError(t, s.ActivityRepository.Save(ctx, models.Activity{ID: 20, ClassID: 2, Description: "other"}))
	require.NoError(t, docs.Put(ctx, "atividades", Document{"id": int64(40), "turmaId": json.Number("1"), "descricao": "from json"}))

	list, err := s.ActivityRepository.ListByClass(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "early", list[0].Description)
	assert.Equal(t, "late", list[1].Description)
	assert.Equal(t, "from json", list[2].Description)

	require.NoError(t, s.ActivityRepository.Delete(ctx, 10))
	list, err = s.ActivityRepository.ListByClass(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestActivityRepository_Get(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorages(t)

	require.NoError(t, s.ActivityRepository.Save(ctx, models.Activity{ID: 7, ClassID: 3, Description: "quiz"}))

	got, err := s.ActivityRepository.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.Activity{ID: 7, ClassID: 3, Description: "quiz"}, got)

	_, err = s.ActivityRepository.Get(ctx, 8)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestActivityRepository_MissingClassID(t *testing.T) {
	docs := &stubDocumentStore{docs: []Document{{"id": int64(1), "descricao": "x"}}}
	repo := NewActivityRepository(docs, logger.Nop())

	_, err := repo.ListByClass(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

// stubDocumentStore returns docs from every Scan regardless of the filter.
type stubDocumentStore struct {
	docs []Document
	err  error
}

func (s *stubDocumentStore) Scan(context.Context, string, Filter) ([]Document, error) {
	return s.docs, s.err
}

func (s *stubDocumentStore) Get(context.Context, string, int64, ...string) (Document, error) {
	return nil, ErrDocumentNotFound
}

func (s *stubDocumentStore) Put(context.Context, string, Document) error { return s.err }

func (s *stubDocumentStore) Delete(context.Context, string, int64) error { return s.err }
