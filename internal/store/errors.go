package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRemote marks every failure of the remote credential store: the
	// backend was unreachable, rejected the request, or returned data the
	// client cannot use.
	ErrRemote = errors.New("remote store error")

	// ErrRemoteTransient marks remote failures that may succeed later
	// (connection loss, 5xx, deadlines). It is itself an [ErrRemote].
	ErrRemoteTransient = fmt.Errorf("%w: transient", ErrRemote)

	// ErrDocumentNotFound is returned by point lookups when no document has
	// the requested id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrMalformedDocument is returned when a stored document does not match
	// the expected schema of its table. It is an [ErrRemote].
	ErrMalformedDocument = fmt.Errorf("%w: malformed document", ErrRemote)

	// ErrPasswordHashNotFound is returned when a user record exists but
	// carries no password hash.
	ErrPasswordHashNotFound = errors.New("stored password hash not found")

	// ErrLocalSessionNotFound is returned by [LocalStorage.Get] when the key
	// holds no value.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are wrapped by backend methods
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
