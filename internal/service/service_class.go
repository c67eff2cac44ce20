package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lyra-school/lyra-client/internal/access"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
	"github.com/lyra-school/lyra-client/internal/utils"
	"github.com/lyra-school/lyra-client/internal/validators"
	"github.com/lyra-school/lyra-client/models"
)

type classService struct {
	classes    store.ClassRepository
	activities store.ActivityRepository
	users      store.UserRepository
	sessions   SessionManager
	ids        *utils.IDGenerator
	validator  validators.Validator
	timeout    time.Duration
	logger     *logger.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(
	classes store.ClassRepository,
	activities store.ActivityRepository,
	users store.UserRepository,
	sessions SessionManager,
	ids *utils.IDGenerator,
	timeout time.Duration,
	logger *logger.Logger,
) ClassService {
	return &classService{
		classes:    classes,
		activities: activities,
		users:      users,
		sessions:   sessions,
		ids:        ids,
		validator:  validators.NewSchoolValidator(),
		timeout:    timeout,
		logger:     logger,
	}
}

func (s *classService) Visible(ctx context.Context) ([]models.Class, error) {
	session, err := authorize(ctx, s.sessions, "list classes", anyRole)
	if err != nil {
		return nil, err
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	scope := access.ClassVisibilityScope(session.Role, session.Name)
	if scope.Kind == models.ScopeSingleSyntheticClass {
		class, err := syntheticClass(rctx, s.users, session)
		if err != nil {
			return nil, mapStoreError(rctx, err)
		}
		return []models.Class{class}, nil
	}

	classes, err := s.classes.List(rctx)
	if err != nil {
		return nil, mapStoreError(rctx, err)
	}

	visible := make([]models.Class, 0, len(classes))
	for _, c := range classes {
		if scope.Allows(c) {
			visible = append(visible, c)
		}
	}

	return visible, nil
}

// Save creates or edits a class.
//
// A professor owns every class they create and may only edit their own. An
// admin must name the professor on creation. Editing keeps the stored owner.
func (s *classService) Save(ctx context.Context, in models.ClassInput) (models.Class, error) {
	log := logger.FromContext(ctx)

	session, err := authorize(ctx, s.sessions, "save class", canManageClasses)
	if err != nil {
		return models.Class{}, err
	}

	fields := []string{validators.FieldID, validators.FieldName}
	if in.IsNew() && models.ParseRole(string(session.Role)) == models.RoleAdmin {
		fields = append(fields, validators.FieldProfessor)
	}
	if err = s.validator.Validate(ctx, in, fields...); err != nil {
		return models.Class{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	class := models.Class{
		ID:       in.ID,
		Name:     strings.TrimSpace(in.Name),
		Students: models.ParseStudents(in.Students),
	}

	if in.IsNew() {
		class.ID = s.ids.Next()
		class.Professor = strings.TrimSpace(in.Professor)
		if models.ParseRole(string(session.Role)) != models.RoleAdmin {
			class.Professor = session.Name
		}
	} else {
		stored, err := s.ownedClass(rctx, session, in.ID)
		if err != nil {
			return models.Class{}, err
		}
		class.Professor = stored.Professor
	}

	if err = s.classes.Save(rctx, class); err != nil {
		log.Err(err).Int64("class_id", class.ID).Msg("error saving class")
		return models.Class{}, mapStoreError(rctx, err)
	}

	log.Info().Int64("class_id", class.ID).Bool("created", in.IsNew()).Msg("class saved")
	return class, nil
}

func (s *classService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	session, err := authorize(ctx, s.sessions, "delete class", canManageClasses)
	if err != nil {
		return err
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err = s.ownedClass(rctx, session, id); err != nil {
		return err
	}

	activities, err := s.activities.ListByClass(rctx, id)
	if err != nil {
		return mapStoreError(rctx, err)
	}
	if len(activities) > 0 {
		log.Info().Int64("class_id", id).Int("activities", len(activities)).Msg("class delete refused")
		return fmt.Errorf("%w: %d activities", ErrClassHasActivities, len(activities))
	}

	if err = s.classes.Delete(rctx, id); err != nil {
		return mapStoreError(rctx, err)
	}

	log.Info().Int64("class_id", id).Msg("class deleted")
	return nil
}

// ownedClass fetches a stored class the session may modify.
func (s *classService) ownedClass(ctx context.Context, session models.Session, id int64) (models.Class, error) {
	class, err := s.classes.Get(ctx, id)
	if err != nil {
		return models.Class{}, mapStoreError(ctx, err)
	}

	if !access.ClassVisibilityScope(session.Role, session.Name).Allows(class) {
		return models.Class{}, fmt.Errorf("%w: class %d belongs to another professor", ErrPermissionDenied, id)
	}

	return class, nil
}

// visibleClass resolves classID to a class the session may see. For
// students the only visible class is the synthetic one keyed by their own
// user id.
func visibleClass(
	ctx context.Context,
	classes store.ClassRepository,
	users store.UserRepository,
	session models.Session,
	classID int64,
) (models.Class, error) {
	scope := access.ClassVisibilityScope(session.Role, session.Name)

	if scope.Kind == models.ScopeSingleSyntheticClass {
		if classID != session.ID {
			return models.Class{}, fmt.Errorf("%w: class %d", ErrPermissionDenied, classID)
		}
		class, err := syntheticClass(ctx, users, session)
		if err != nil {
			return models.Class{}, mapStoreError(ctx, err)
		}
		return class, nil
	}

	class, err := classes.Get(ctx, classID)
	if err != nil {
		return models.Class{}, mapStoreError(ctx, err)
	}
	if !scope.Allows(class) {
		return models.Class{}, fmt.Errorf("%w: class %d", ErrPermissionDenied, classID)
	}

	return class, nil
}

// syntheticClass builds a student's pseudo-class from their own user
// record: id is the user id, name is the record's class name or
// models.SyntheticClassName.
func syntheticClass(ctx context.Context, users store.UserRepository, session models.Session) (models.Class, error) {
	class := models.Class{
		ID:        session.ID,
		Name:      models.SyntheticClassName,
		Synthetic: true,
	}

	records, err := users.FindByEmail(ctx, session.Email)
	if err != nil {
		return models.Class{}, err
	}

	for _, u := range records {
		if u.ID == session.ID {
			if u.AssignedClassName != "" {
				class.Name = u.AssignedClassName
			}
			break
		}
	}

	return class, nil
}
