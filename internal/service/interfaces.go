package service

import (
	"context"

	"github.com/lyra-school/lyra-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager establishes and persists the identity of the current user.
// It is the only writer of the local session slot.
type SessionManager interface {
	// Authenticate looks up the user by email, verifies password against the
	// stored hash and persists the resulting session before returning it.
	//
	// Errors:
	//   - ErrValidation if email or password is blank (no remote call is made);
	//   - ErrSubmissionInProgress if another Authenticate is still running;
	//   - ErrUserNotFound if no record has the email;
	//   - ErrWrongPassword if the password does not verify;
	//   - ErrRemote or ErrTimeout if the credential store fails.
	Authenticate(ctx context.Context, email, password string) (models.Session, error)

	// PersistSession signs session and writes it to the slot, replacing any
	// previous value.
	PersistSession(ctx context.Context, session models.Session) error

	// LoadSession reads the slot. It returns ErrNoSession when the slot is
	// empty or holds a value that does not verify; the latter also wraps
	// ErrCorruptSession and clears the slot.
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession empties the slot. Clearing an empty slot is not an error.
	ClearSession(ctx context.Context) error

	// RequireSession loads the session. When there is none it calls onAbsent
	// and returns false.
	RequireSession(ctx context.Context, onAbsent func()) (models.Session, bool)
}

// UserService manages the "users" table. Returned users never carry the
// password hash.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	// ListProfessors feeds the professor picker of the class form.
	ListProfessors(ctx context.Context) ([]models.User, error)
	// Save creates or edits a user. An empty password on edit keeps the
	// stored hash.
	Save(ctx context.Context, in models.UserInput) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// ClassService manages the "turmas" table under the Role Gate's visibility
// scope.
type ClassService interface {
	// Visible returns the classes the current session may see, ordered by id.
	Visible(ctx context.Context) ([]models.Class, error)
	Save(ctx context.Context, in models.ClassInput) (models.Class, error)
	// Delete refuses with ErrClassHasActivities while activities reference
	// the class.
	Delete(ctx context.Context, id int64) error
}

// ActivityService manages the "atividades" table of one visible class.
type ActivityService interface {
	List(ctx context.Context, classID int64) ([]models.Activity, error)
	Save(ctx context.Context, in models.ActivityInput) (models.Activity, error)
	Delete(ctx context.Context, classID, id int64) error
}
