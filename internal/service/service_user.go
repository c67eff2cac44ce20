package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lyra-school/lyra-client/internal/crypto"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
	"github.com/lyra-school/lyra-client/internal/utils"
	"github.com/lyra-school/lyra-client/internal/validators"
	"github.com/lyra-school/lyra-client/models"
)

type userService struct {
	users     store.UserRepository
	sessions  SessionManager
	hasher    crypto.PasswordHasher
	ids       *utils.IDGenerator
	validator validators.Validator
	timeout   time.Duration
	logger    *logger.Logger
}

// NewUserService constructs a UserService. Every call re-checks the
// persisted session through sessions.
func NewUserService(
	users store.UserRepository,
	sessions SessionManager,
	hasher crypto.PasswordHasher,
	ids *utils.IDGenerator,
	timeout time.Duration,
	logger *logger.Logger,
) UserService {
	return &userService{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		ids:       ids,
		validator: validators.NewSchoolValidator(),
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	if _, err := authorize(ctx, s.sessions, "list users", canManageUsers); err != nil {
		return nil, err
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	users, err := s.users.List(rctx)
	if err != nil {
		return nil, mapStoreError(rctx, err)
	}

	return withoutHashes(users), nil
}

func (s *userService) ListProfessors(ctx context.Context) ([]models.User, error) {
	if _, err := authorize(ctx, s.sessions, "list professors", canManageClasses); err != nil {
		return nil, err
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	users, err := s.users.FindByRole(rctx, models.RoleProfessor)
	if err != nil {
		return nil, mapStoreError(rctx, err)
	}

	return withoutHashes(users), nil
}

// Save creates or edits a user record.
//
// A non-empty password is hashed before it leaves the process. On edit an
// empty password means "keep": the stored hash is fetched and written back
// unchanged, and the edit aborts with ErrStoredHashMissing if there is none.
// Editing an id with no stored record fails with ErrRecordNotFound.
func (s *userService) Save(ctx context.Context, in models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := authorize(ctx, s.sessions, "save user", canManageUsers); err != nil {
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, in); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user := models.User{
		ID:                 in.ID,
		Name:               in.Name,
		Email:              in.Email,
		Role:               in.Role,
		AssignedClassName:  in.AssignedClassName,
		AssignedCourseName: in.AssignedCourseName,
	}.Normalize()

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var err error
	if !in.IsNew() {
		// the lookup doubles as the existence check of the edited record
		user.PasswordHash, err = s.users.GetPasswordHash(rctx, in.ID)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrPasswordHashNotFound) && in.Password != "":
		default:
			log.Err(err).Int64("user_id", in.ID).Msg("cannot edit user: stored record unavailable")
			return models.User{}, mapStoreError(rctx, err)
		}
	}

	if in.Password != "" {
		if user.PasswordHash, err = s.hasher.Hash(in.Password); err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
	}

	if in.IsNew() {
		user.ID = s.ids.Next()
	}

	if err = s.users.Save(rctx, user); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error saving user")
		return models.User{}, mapStoreError(rctx, err)
	}

	log.Info().Int64("user_id", user.ID).Bool("created", in.IsNew()).Msg("user saved")

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	session, err := authorize(ctx, s.sessions, "delete user", canManageUsers)
	if err != nil {
		return err
	}
	if id == session.ID {
		return ErrDeleteOwnAccount
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err = s.users.Delete(rctx, id); err != nil {
		return mapStoreError(rctx, err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func withoutHashes(users []models.User) []models.User {
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users
}
