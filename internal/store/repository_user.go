package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/models"
)

// Attributes of the "users" table.
const (
	userFieldName          = "nome"
	userFieldEmail         = "email"
	userFieldPasswordHash  = "senha"
	userFieldRole          = "tipo"
	userFieldAssignedClass = "turmaProfessor"
	userFieldAssignedCurso = "cursoProfessor"
)

// userRepository is the [DocumentStore]-backed implementation of
// [UserRepository].
type userRepository struct {
	docs   DocumentStore
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] over docs.
func NewUserRepository(docs DocumentStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		docs:   docs,
		logger: logger,
	}
}

// FindByEmail implements [UserRepository].
func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	return r.scan(ctx, Filter{userFieldEmail: email})
}

// FindByRole implements [UserRepository].
func (r *userRepository) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return r.scan(ctx, Filter{userFieldRole: string(role)})
}

// List implements [UserRepository].
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return r.scan(ctx, nil)
}

// GetPasswordHash implements [UserRepository]. Only the hash attribute is
// requested from the store.
func (r *userRepository) GetPasswordHash(ctx context.Context, id int64) (string, error) {
	doc, err := r.docs.Get(ctx, models.User{}.TableName(), id, userFieldPasswordHash)
	if err != nil {
		return "", err
	}

	hash, err := optionalString(doc, userFieldPasswordHash)
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", ErrPasswordHashNotFound
	}

	return hash, nil
}

// Save implements [UserRepository].
func (r *userRepository) Save(ctx context.Context, user models.User) error {
	return r.docs.Put(ctx, user.TableName(), encodeUser(user))
}

// Delete implements [UserRepository].
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.docs.Delete(ctx, models.User{}.TableName(), id)
}

func (r *userRepository) scan(ctx context.Context, filter Filter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	docs, err := r.docs.Scan(ctx, models.User{}.TableName(), filter)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		user, err := decodeUser(doc)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.scan").Msg("malformed user record")
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func encodeUser(u models.User) Document {
	return Document{
		IDField:                u.ID,
		userFieldName:          u.Name,
		userFieldEmail:         u.Email,
		userFieldPasswordHash:  u.PasswordHash,
		userFieldRole:          string(u.Role),
		userFieldAssignedClass: u.AssignedClassName,
		userFieldAssignedCurso: u.AssignedCourseName,
	}
}

// decodeUser validates one "users" document. id and email are required;
// the role is mapped onto the closed role set.
func decodeUser(doc Document) (models.User, error) {
	var (
		u   models.User
		err error
	)

	if u.ID, err = requiredInt64(doc, IDField); err != nil {
		return models.User{}, err
	}
	if u.Email, err = requiredString(doc, userFieldEmail); err != nil {
		return models.User{}, err
	}

	var role string
	errs := []error{}
	u.Name, err = optionalString(doc, userFieldName)
	errs = append(errs, err)
	u.PasswordHash, err = optionalString(doc, userFieldPasswordHash)
	errs = append(errs, err)
	role, err = optionalString(doc, userFieldRole)
	errs = append(errs, err)
	u.AssignedClassName, err = optionalString(doc, userFieldAssignedClass)
	errs = append(errs, err)
	u.AssignedCourseName, err = optionalString(doc, userFieldAssignedCurso)
	errs = append(errs, err)

	if err = errors.Join(errs...); err != nil {
		return models.User{}, fmt.Errorf("user %d: %w", u.ID, err)
	}

	u.Role = models.ParseRole(role)
	return u, nil
}
