package store

import (
	"context"

	"github.com/lyra-school/lyra-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Document is one record of a remote table as the backend returns it:
// attribute name to JSON-compatible value. Numbers may arrive as int64,
// float64 or json.Number depending on the backend.
type Document map[string]any

// Filter is an equality filter over top-level attributes. An empty filter
// matches every document.
type Filter map[string]any

// DocumentStore is the boundary to the remote credential store. Records are
// addressed by table name and numeric id.
type DocumentStore interface {
	// Scan returns every document of table matching filter, ordered by id
	// ascending.
	Scan(ctx context.Context, table string, filter Filter) ([]Document, error)

	// Get returns the document with the given id. When fields is not empty
	// only those attributes are returned. Missing documents yield
	// [ErrDocumentNotFound].
	Get(ctx context.Context, table string, id int64, fields ...string) (Document, error)

	// Put creates or replaces the document identified by doc["id"].
	Put(ctx context.Context, table string, doc Document) error

	// Delete removes the document with the given id. Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, table string, id int64) error
}

// UserRepository reads and writes the "users" table.
type UserRepository interface {
	// FindByEmail returns every user whose stored email equals email,
	// ordered by id. Uniqueness is not enforced by the store, so the slice
	// may hold more than one record.
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	// GetPasswordHash reads only the "senha" attribute of one user.
	GetPasswordHash(ctx context.Context, id int64) (string, error)
	List(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id int64) error
}

// ClassRepository reads and writes the "turmas" table.
type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	Get(ctx context.Context, id int64) (models.Class, error)
	Save(ctx context.Context, class models.Class) error
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository reads and writes the "atividades" table.
type ActivityRepository interface {
	ListByClass(ctx context.Context, classID int64) ([]models.Activity, error)
	Get(ctx context.Context, id int64) (models.Activity, error)
	Save(ctx context.Context, activity models.Activity) error
	Delete(ctx context.Context, id int64) error
}

// LocalStorage is the durable on-device key/value store. It outlives
// process restarts.
type LocalStorage interface {
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Get returns the value stored under key or [ErrLocalSessionNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
